// internal/service/voice_message_service_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository/mocks"
	svcmocks "go_5_listen_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBMessage() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test SubmitMessage ---
func Test_messageService_SubmitMessage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBMessage()

	userID := uuid.New()
	trackID := uuid.New()
	existingTrack := &model.Track{TrackID: trackID, WeekID: uuid.New(), Title: "音声1", Kind: model.MediaKindAudio}
	storedURL := "https://bucket.s3.ap-northeast-1.amazonaws.com/voice-messages/reply.webm"

	newReq := func(withTrack bool) *model.SubmitMessageRequest {
		req := &model.SubmitMessageRequest{
			Filename:    "reply.webm",
			ContentType: "audio/webm",
			File:        strings.NewReader("dummy voice bytes"),
		}
		if withTrack {
			req.TrackID = &trackID
		}
		return req
	}

	keyMatcher := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "voice-messages/") && strings.HasSuffix(key, "-reply.webm")
	})

	t.Run("正常系: トラックへの返信として登録する", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockTrackRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), trackID).
			Return(existingTrack, nil).Once()
		mockMedia.On("Store", ctx, keyMatcher, mock.Anything, "audio/webm").
			Return(storedURL, nil).Once()
		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VoiceMessage")).
			Run(func(args mock.Arguments) {
				m := args.Get(2).(*model.VoiceMessage)
				assert.Equal(t, userID, m.UserID)
				require.NotNil(t, m.TrackID)
				assert.Equal(t, trackID, *m.TrackID)
				assert.Equal(t, storedURL, m.FileURL)
				assert.False(t, m.Viewed)
			}).Return(nil).Once()

		message, err := messageService.SubmitMessage(ctx, userID, newReq(true))

		require.NoError(t, err)
		require.NotNil(t, message)
		assert.Equal(t, storedURL, message.FileURL)
		mockMessageRepo.AssertExpectations(t)
		mockMedia.AssertExpectations(t)
	})

	t.Run("正常系: トラック指定なしの自由録音", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMedia.On("Store", ctx, keyMatcher, mock.Anything, "audio/webm").
			Return(storedURL, nil).Once()
		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VoiceMessage")).
			Run(func(args mock.Arguments) {
				m := args.Get(2).(*model.VoiceMessage)
				assert.Nil(t, m.TrackID)
			}).Return(nil).Once()

		message, err := messageService.SubmitMessage(ctx, userID, newReq(false))

		require.NoError(t, err)
		require.NotNil(t, message)
		mockTrackRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 紐づけ先トラックが存在しない場合はファイルを保存しない", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockTrackRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), trackID).
			Return(nil, model.ErrNotFound).Once()

		message, err := messageService.SubmitMessage(ctx, userID, newReq(true))

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, message)
		mockMedia.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: DB登録に失敗したら保存済みファイルを後始末する", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMedia.On("Store", ctx, keyMatcher, mock.Anything, "audio/webm").
			Return(storedURL, nil).Once()
		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VoiceMessage")).
			Return(errors.New("db error on create")).Once()
		mockMedia.On("Delete", ctx, storedURL).
			Return(nil).Once()

		message, err := messageService.SubmitMessage(ctx, userID, newReq(false))

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, message)
		mockMedia.AssertExpectations(t)
	})
}

// --- Test MarkViewed ---
func Test_messageService_MarkViewed(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBMessage()

	messageID := uuid.New()
	updatedMessage := &model.VoiceMessage{
		MessageID: messageID,
		UserID:    uuid.New(),
		FileURL:   "https://media.invalid/voice-messages/reply.webm",
		Viewed:    true,
		CreatedAt: time.Now(),
	}

	t.Run("正常系: 既読にして更新後の値を返す", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMessageRepo.On("UpdateViewed", ctx, mock.AnythingOfType("*gorm.DB"), messageID, true).
			Return(nil).Once()
		mockMessageRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), messageID).
			Return(updatedMessage, nil).Once()

		message, err := messageService.MarkViewed(ctx, messageID, true)

		require.NoError(t, err)
		require.NotNil(t, message)
		assert.True(t, message.Viewed)
	})

	t.Run("異常系: メッセージが存在しない", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMessageRepo.On("UpdateViewed", ctx, mock.AnythingOfType("*gorm.DB"), messageID, true).
			Return(model.ErrNotFound).Once()

		message, err := messageService.MarkViewed(ctx, messageID, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, message)
	})
}

// --- Test DeleteMessage / DeleteMessages ---
func Test_messageService_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBMessage()

	messageID := uuid.New()
	fileURL := "https://media.invalid/voice-messages/reply.webm"
	existingMessage := &model.VoiceMessage{
		MessageID: messageID,
		UserID:    uuid.New(),
		FileURL:   fileURL,
	}

	t.Run("正常系: DB削除後にメディアも消す", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMessageRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), messageID).
			Return(existingMessage, nil).Once()
		mockMessageRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), messageID).
			Return(nil).Once()
		mockMedia.On("Delete", ctx, fileURL).
			Return(nil).Once()

		err := messageService.DeleteMessage(ctx, messageID)

		require.NoError(t, err)
		mockMedia.AssertExpectations(t)
	})

	t.Run("正常系: メディア削除の失敗は握りつぶす", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMessageRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), messageID).
			Return(existingMessage, nil).Once()
		mockMessageRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), messageID).
			Return(nil).Once()
		mockMedia.On("Delete", ctx, fileURL).
			Return(errors.New("s3 unavailable")).Once()

		err := messageService.DeleteMessage(ctx, messageID)

		// DB削除が成功していればメディア側の失敗は結果に影響しない
		require.NoError(t, err)
	})

	t.Run("異常系: メッセージが存在しない", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		mockMessageRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), messageID).
			Return(nil, model.ErrNotFound).Once()

		err := messageService.DeleteMessage(ctx, messageID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockMedia.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("正常系: 一括削除は該当分のメディアも後始末する", func(t *testing.T) {
		mockTrackRepo := new(mocks.TrackRepository)
		mockMessageRepo := new(mocks.VoiceMessageRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		messageService := NewMessageService(db, mockTrackRepo, mockMessageRepo, mockMedia)

		otherID := uuid.New()
		otherURL := "https://media.invalid/voice-messages/another.webm"
		ids := []uuid.UUID{messageID, otherID}

		mockMessageRepo.On("FindByIDs", ctx, mock.AnythingOfType("*gorm.DB"), ids).
			Return([]*model.VoiceMessage{
				existingMessage,
				{MessageID: otherID, UserID: uuid.New(), FileURL: otherURL},
			}, nil).Once()
		mockMessageRepo.On("DeleteByIDs", ctx, mock.AnythingOfType("*gorm.DB"), ids).
			Return(int64(2), nil).Once()
		mockMedia.On("Delete", ctx, fileURL).Return(nil).Once()
		mockMedia.On("Delete", ctx, otherURL).Return(nil).Once()

		deleted, err := messageService.DeleteMessages(ctx, &model.BatchDeleteMessagesRequest{IDs: ids})

		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		mockMedia.AssertExpectations(t)
	})
}
