// internal/service/voice_message_service.go
package service

import (
	"context"
	"errors"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageService はユーザーが吹き込む音声メッセージの投稿と管理を担当します。
type MessageService interface {
	// SubmitMessage は録音ファイルを保存してメッセージを1件登録します。
	// track_id が指定されていればトラックへの返信として紐づける。
	SubmitMessage(ctx context.Context, userID uuid.UUID, req *model.SubmitMessageRequest) (*model.VoiceMessage, error)
	// ListMessages は管理者向けの横断一覧（投稿者・トラック・週付き）。
	ListMessages(ctx context.Context) ([]*model.VoiceMessageListItemResponse, error)
	// MarkViewed は既読フラグを付け外しします。
	MarkViewed(ctx context.Context, messageID uuid.UUID, viewed bool) (*model.VoiceMessage, error)
	// DeleteMessage はメッセージとメディアファイルを削除します。
	// メディア側の削除失敗はログに残すだけで、DB削除の成否を結果とする。
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
	// DeleteMessages は管理者向けの一括削除。
	DeleteMessages(ctx context.Context, req *model.BatchDeleteMessagesRequest) (int64, error)
}

type messageService struct {
	db          *gorm.DB
	trackRepo   repository.TrackRepository
	messageRepo repository.VoiceMessageRepository
	media       MediaStore
}

func NewMessageService(db *gorm.DB, trackRepo repository.TrackRepository, messageRepo repository.VoiceMessageRepository, media MediaStore) MessageService {
	return &messageService{
		db:          db,
		trackRepo:   trackRepo,
		messageRepo: messageRepo,
		media:       media,
	}
}

func (s *messageService) SubmitMessage(ctx context.Context, userID uuid.UUID, req *model.SubmitMessageRequest) (*model.VoiceMessage, error) {
	logger := middleware.GetLogger(ctx)

	// トラックへの返信なら先に存在確認。ファイルを保存してから
	// 404で捨てることになるのを避ける。
	if req.TrackID != nil {
		if _, err := s.trackRepo.FindByID(ctx, s.db, *req.TrackID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("NOT_FOUND", "トラックが見つかりません", "track_id", model.ErrNotFound)
			}
			return nil, model.ErrInternalServer
		}
	}

	key := "voice-messages/" + uuid.New().String() + "-" + req.Filename
	fileURL, err := s.media.Store(ctx, key, req.File, req.ContentType)
	if err != nil {
		logger.Error("Error storing voice message media", "error", err, "key", key)
		return nil, model.ErrInternalServer
	}

	var created *model.VoiceMessage

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		message := &model.VoiceMessage{
			MessageID: uuid.New(),
			UserID:    userID,
			TrackID:   req.TrackID,
			FileURL:   fileURL,
		}
		if err := s.messageRepo.Create(ctx, tx, message); err != nil {
			logger.Error("Error creating voice message in transaction", "error", err)
			return model.ErrInternalServer
		}
		created = message
		return nil // コミット
	})

	if err != nil {
		if delErr := s.media.Delete(ctx, fileURL); delErr != nil {
			logger.Warn("Failed to delete media file after message registration failure", "error", delErr, "file_url", fileURL)
		}
		logger.Error("Transaction failed for SubmitMessage", "error", err)
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *messageService) ListMessages(ctx context.Context) ([]*model.VoiceMessageListItemResponse, error) {
	logger := middleware.GetLogger(ctx)
	items, err := s.messageRepo.FindAllWithDetails(ctx, s.db)
	if err != nil {
		logger.Error("Error listing voice messages with details", "error", err)
		return nil, model.ErrInternalServer
	}
	return items, nil
}

func (s *messageService) MarkViewed(ctx context.Context, messageID uuid.UUID, viewed bool) (*model.VoiceMessage, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.VoiceMessage

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.messageRepo.UpdateViewed(ctx, tx, messageID, viewed); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error updating viewed flag in transaction", "error", err)
			return model.ErrInternalServer
		}

		var err error
		updated, err = s.messageRepo.FindByID(ctx, tx, messageID)
		if err != nil {
			logger.Error("Error fetching updated voice message in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for MarkViewed", "error", err)
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

// DeleteMessage はメッセージとメディアファイルを削除します。
// メディアファイルの削除はコミット後のベストエフォート。
func (s *messageService) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	var fileURL string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		message, err := s.messageRepo.FindByID(ctx, tx, messageID)
		if err != nil {
			return err
		}
		fileURL = message.FileURL

		if err := s.messageRepo.Delete(ctx, tx, messageID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting voice message in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteMessage", "error", err)
		return model.ErrInternalServer
	}

	if err := s.media.Delete(ctx, fileURL); err != nil {
		logger.Warn("Failed to delete media file after message deletion", "error", err, "file_url", fileURL)
	}

	return nil
}

func (s *messageService) DeleteMessages(ctx context.Context, req *model.BatchDeleteMessagesRequest) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var fileURLs []string
	var deleted int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		messages, err := s.messageRepo.FindByIDs(ctx, tx, req.IDs)
		if err != nil {
			logger.Error("Error finding voice messages in transaction", "error", err)
			return model.ErrInternalServer
		}
		for _, m := range messages {
			fileURLs = append(fileURLs, m.FileURL)
		}

		deleted, err = s.messageRepo.DeleteByIDs(ctx, tx, req.IDs)
		if err != nil {
			logger.Error("Error deleting voice messages in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		logger.Error("Transaction failed for DeleteMessages", "error", err)
		return 0, model.ErrInternalServer
	}

	// メディアファイルの削除はコミット後のベストエフォート
	for _, fileURL := range fileURLs {
		if err := s.media.Delete(ctx, fileURL); err != nil {
			logger.Warn("Failed to delete media file after batch deletion", "error", err, "file_url", fileURL)
		}
	}

	return deleted, nil
}
