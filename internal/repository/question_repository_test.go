// internal/repository/question_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_5_listen_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test MaxOrder ---
func Test_gormQuestionRepository_MaxOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewGormQuestionRepository()

	t.Run("設問がなければ0", func(t *testing.T) {
		db := setupTestDB(t)
		week := createTestWeek(t, db, "第1週", 1)

		max, err := repo.MaxOrder(ctx, db, week.WeekID)
		require.NoError(t, err)
		assert.Equal(t, 0, max)
	})

	t.Run("週ごとに独立して数える", func(t *testing.T) {
		db := setupTestDB(t)
		week1 := createTestWeek(t, db, "第1週", 1)
		week2 := createTestWeek(t, db, "第2週", 2)
		createTestQuestion(t, db, week1.WeekID, "設問1", 2)
		createTestQuestion(t, db, week1.WeekID, "設問2", 4)
		createTestQuestion(t, db, week2.WeekID, "設問3", 50)

		max, err := repo.MaxOrder(ctx, db, week1.WeekID)
		require.NoError(t, err)
		assert.Equal(t, 4, max)
	})
}

// --- Test Delete ---
func Test_gormQuestionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGormQuestionRepository()

	t.Run("紐づく回答も一緒に消える", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "hanako")
		week := createTestWeek(t, db, "第1週", 1)
		question := createTestQuestion(t, db, week.WeekID, "設問1", 1)
		otherQuestion := createTestQuestion(t, db, week.WeekID, "設問2", 2)

		createTestAnswer(t, db, user.UserID, question.QuestionID, "回答1", time.Now())
		createTestAnswer(t, db, user.UserID, question.QuestionID, "回答2", time.Now())
		keep := createTestAnswer(t, db, user.UserID, otherQuestion.QuestionID, "残る回答", time.Now())

		err := repo.Delete(ctx, db, question.QuestionID)
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, db, question.QuestionID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		var answerCount int64
		require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", question.QuestionID).Count(&answerCount).Error)
		assert.Zero(t, answerCount)

		// 他の設問の回答は残る
		var keepCount int64
		require.NoError(t, db.Model(&model.Answer{}).Where("answer_id = ?", keep.AnswerID).Count(&keepCount).Error)
		assert.Equal(t, int64(1), keepCount)
	})

	t.Run("存在しない設問はErrNotFound", func(t *testing.T) {
		db := setupTestDB(t)

		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test FindByWeek ---
func Test_gormQuestionRepository_FindByWeek(t *testing.T) {
	ctx := context.Background()
	repo := NewGormQuestionRepository()

	db := setupTestDB(t)
	week := createTestWeek(t, db, "第1週", 1)
	createTestQuestion(t, db, week.WeekID, "後の設問", 4)
	createTestQuestion(t, db, week.WeekID, "先の設問", 2)

	questions, err := repo.FindByWeek(ctx, db, week.WeekID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "先の設問", questions[0].Text)
	assert.Equal(t, "後の設問", questions[1].Text)
}
