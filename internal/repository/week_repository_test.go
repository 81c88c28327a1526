// internal/repository/week_repository_test.go
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

// --- Test FindAll / MaxOrder ---
func Test_gormWeekRepository_FindAllAndMaxOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewGormWeekRepository()

	t.Run("週がなければMaxOrderは0", func(t *testing.T) {
		db := setupTestDB(t)

		max, err := repo.MaxOrder(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, 0, max)
	})

	t.Run("FindAllはdisplay_order順・MaxOrderは最大値", func(t *testing.T) {
		db := setupTestDB(t)
		createTestWeek(t, db, "第3週", 3)
		createTestWeek(t, db, "第1週", 1)
		createTestWeek(t, db, "第2週", 2)

		weeks, err := repo.FindAll(ctx, db)
		require.NoError(t, err)
		require.Len(t, weeks, 3)
		assert.Equal(t, "第1週", weeks[0].Title)
		assert.Equal(t, "第2週", weeks[1].Title)
		assert.Equal(t, "第3週", weeks[2].Title)

		max, err := repo.MaxOrder(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, 3, max)
	})
}

// --- Test Update ---
func Test_gormWeekRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewGormWeekRepository()

	t.Run("正常系", func(t *testing.T) {
		db := setupTestDB(t)
		week := createTestWeek(t, db, "旧タイトル", 1)

		err := repo.Update(ctx, db, week.WeekID, map[string]interface{}{
			"title":         "新タイトル",
			"display_order": 5,
		})
		require.NoError(t, err)

		updated, err := repo.FindByID(ctx, db, week.WeekID)
		require.NoError(t, err)
		assert.Equal(t, "新タイトル", updated.Title)
		assert.Equal(t, 5, updated.Order)
	})

	t.Run("存在しない週はErrNotFound", func(t *testing.T) {
		db := setupTestDB(t)

		err := repo.Update(ctx, db, uuid.New(), map[string]interface{}{"title": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test Delete ---
func Test_gormWeekRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGormWeekRepository()

	t.Run("週配下のトラック・設問・進捗・回答がまとめて消える", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(t, db, "hanako")
		week := createTestWeek(t, db, "第1週", 1)
		track := createTestTrack(t, db, week.WeekID, "audio1", 1)
		question := createTestQuestion(t, db, week.WeekID, "設問1", 2)

		progress := &model.ListeningProgress{
			ProgressID:     uuid.New(),
			UserID:         user.UserID,
			TrackID:        track.TrackID,
			Position:       10,
			LastListenedAt: time.Now(),
		}
		require.NoError(t, db.Create(progress).Error)
		createTestAnswer(t, db, user.UserID, question.QuestionID, "回答です", time.Now())

		// 消してはいけない別の週
		otherWeek := createTestWeek(t, db, "第2週", 2)
		otherTrack := createTestTrack(t, db, otherWeek.WeekID, "audio2", 1)
		otherQuestion := createTestQuestion(t, db, otherWeek.WeekID, "設問2", 2)

		err := repo.Delete(ctx, db, week.WeekID)
		require.NoError(t, err)

		// 週本体と配下の一式が消えている
		_, err = repo.FindByID(ctx, db, week.WeekID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		var trackCount, questionCount, progressCount, answerCount int64
		require.NoError(t, db.Model(&model.Track{}).Where("week_id = ?", week.WeekID).Count(&trackCount).Error)
		require.NoError(t, db.Model(&model.Question{}).Where("week_id = ?", week.WeekID).Count(&questionCount).Error)
		require.NoError(t, db.Model(&model.ListeningProgress{}).Where("track_id = ?", track.TrackID).Count(&progressCount).Error)
		require.NoError(t, db.Model(&model.Answer{}).Where("question_id = ?", question.QuestionID).Count(&answerCount).Error)
		assert.Zero(t, trackCount)
		assert.Zero(t, questionCount)
		assert.Zero(t, progressCount)
		assert.Zero(t, answerCount)

		// ユーザーと別の週は残っている
		var userCount int64
		require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
		assert.Equal(t, int64(1), userCount)

		_, err = repo.FindByID(ctx, db, otherWeek.WeekID)
		assert.NoError(t, err)
		var otherTrackCount, otherQuestionCount int64
		require.NoError(t, db.Model(&model.Track{}).Where("track_id = ?", otherTrack.TrackID).Count(&otherTrackCount).Error)
		require.NoError(t, db.Model(&model.Question{}).Where("question_id = ?", otherQuestion.QuestionID).Count(&otherQuestionCount).Error)
		assert.Equal(t, int64(1), otherTrackCount)
		assert.Equal(t, int64(1), otherQuestionCount)
	})

	t.Run("存在しない週はErrNotFound", func(t *testing.T) {
		db := setupTestDB(t)

		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
