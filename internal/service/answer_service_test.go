// internal/service/answer_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBAnswer() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test SubmitAnswer ---
func Test_answerService_SubmitAnswer(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAnswer()
	mockQuestionRepo := new(mocks.QuestionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	answerService := NewAnswerService(db, mockQuestionRepo, mockAnswerRepo)

	userID := uuid.New()
	questionID := uuid.New()
	existingQuestion := &model.Question{QuestionID: questionID, WeekID: uuid.New(), Text: "設問1", Order: 2}

	tests := []struct {
		name      string
		req       *model.PostAnswerRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "正常系: 回答の追加",
			req:  &model.PostAnswerRequest{QuestionID: questionID, Text: "私の回答です"},
			setupMock: func() {
				mockQuestionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existingQuestion, nil).Once()
				mockAnswerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Answer")).
					Run(func(args mock.Arguments) {
						answer := args.Get(2).(*model.Answer)
						assert.Equal(t, userID, answer.UserID)
						assert.Equal(t, questionID, answer.QuestionID)
						assert.Equal(t, "私の回答です", answer.Text)
						assert.NotEqual(t, uuid.Nil, answer.AnswerID)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			// 再提出は上書きせず新しい行として積む。なのでCreateがもう一度呼ばれるだけ。
			name: "正常系: 同じ設問への再提出も通る",
			req:  &model.PostAnswerRequest{QuestionID: questionID, Text: "修正した回答"},
			setupMock: func() {
				mockQuestionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existingQuestion, nil).Once()
				mockAnswerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Answer")).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 設問が存在しない",
			req:  &model.PostAnswerRequest{QuestionID: questionID, Text: "回答"},
			setupMock: func() {
				mockQuestionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: CreateでDBエラー",
			req:  &model.PostAnswerRequest{QuestionID: questionID, Text: "回答"},
			setupMock: func() {
				mockQuestionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
					Return(existingQuestion, nil).Once()
				mockAnswerRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Answer")).
					Return(errors.New("db error on create")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuestionRepo.Mock = mock.Mock{}
			mockAnswerRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			created, err := answerService.SubmitAnswer(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, tt.req.Text, created.Text)
			}

			mockQuestionRepo.AssertExpectations(t)
			mockAnswerRepo.AssertExpectations(t)
		})
	}
}

// --- Test ListMyAnswers ---
func Test_answerService_ListMyAnswers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAnswer()
	mockQuestionRepo := new(mocks.QuestionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	answerService := NewAnswerService(db, mockQuestionRepo, mockAnswerRepo)

	userID := uuid.New()
	questionID := uuid.New()
	existingQuestion := &model.Question{QuestionID: questionID, WeekID: uuid.New(), Text: "設問1"}
	answers := []*model.Answer{
		{AnswerID: uuid.New(), UserID: userID, QuestionID: questionID, Text: "回答2"},
		{AnswerID: uuid.New(), UserID: userID, QuestionID: questionID, Text: "回答1"},
	}

	t.Run("正常系: 絞り込みなし", func(t *testing.T) {
		mockQuestionRepo.Mock = mock.Mock{}
		mockAnswerRepo.Mock = mock.Mock{}

		mockAnswerRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, (*uuid.UUID)(nil)).
			Return(answers, nil).Once()

		got, err := answerService.ListMyAnswers(ctx, userID, nil)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		// 設問の存在確認はスキップされる
		mockQuestionRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: 設問IDで絞り込み", func(t *testing.T) {
		mockQuestionRepo.Mock = mock.Mock{}
		mockAnswerRepo.Mock = mock.Mock{}

		mockQuestionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
			Return(existingQuestion, nil).Once()
		mockAnswerRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, &questionID).
			Return(answers, nil).Once()

		got, err := answerService.ListMyAnswers(ctx, userID, &questionID)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("異常系: 絞り込み先の設問が存在しない", func(t *testing.T) {
		mockQuestionRepo.Mock = mock.Mock{}
		mockAnswerRepo.Mock = mock.Mock{}

		mockQuestionRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), questionID).
			Return(nil, model.ErrNotFound).Once()

		got, err := answerService.ListMyAnswers(ctx, userID, &questionID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, got)
		mockAnswerRepo.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test DeleteAnswers ---
func Test_answerService_DeleteAnswers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAnswer()
	mockQuestionRepo := new(mocks.QuestionRepository)
	mockAnswerRepo := new(mocks.AnswerRepository)
	answerService := NewAnswerService(db, mockQuestionRepo, mockAnswerRepo)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	t.Run("正常系: 削除件数が返る", func(t *testing.T) {
		mockAnswerRepo.Mock = mock.Mock{}

		// 存在しないIDが混ざっていても消せた分だけ数える
		mockAnswerRepo.On("DeleteByIDs", ctx, mock.AnythingOfType("*gorm.DB"), ids).
			Return(int64(2), nil).Once()

		deleted, err := answerService.DeleteAnswers(ctx, &model.BatchDeleteAnswersRequest{IDs: ids})

		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		mockAnswerRepo.AssertExpectations(t)
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		mockAnswerRepo.Mock = mock.Mock{}

		mockAnswerRepo.On("DeleteByIDs", ctx, mock.AnythingOfType("*gorm.DB"), ids).
			Return(int64(0), errors.New("db error on delete")).Once()

		deleted, err := answerService.DeleteAnswers(ctx, &model.BatchDeleteAnswersRequest{IDs: ids})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Zero(t, deleted)
	})
}
