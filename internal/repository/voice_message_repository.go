//go:generate mockery --name VoiceMessageRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoiceMessageRepository インターフェース
type VoiceMessageRepository interface {
	Create(ctx context.Context, tx *gorm.DB, message *model.VoiceMessage) error
	FindByID(ctx context.Context, db *gorm.DB, messageID uuid.UUID) (*model.VoiceMessage, error)
	// FindByIDs は一括削除前のメディア後始末用に file_url をまとめて引くのに使います。
	FindByIDs(ctx context.Context, db *gorm.DB, messageIDs []uuid.UUID) ([]*model.VoiceMessage, error)
	FindAllWithDetails(ctx context.Context, db *gorm.DB) ([]*model.VoiceMessageListItemResponse, error)
	UpdateViewed(ctx context.Context, tx *gorm.DB, messageID uuid.UUID, viewed bool) error
	Delete(ctx context.Context, tx *gorm.DB, messageID uuid.UUID) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) (int64, error)
}

type gormVoiceMessageRepository struct{}

func NewGormVoiceMessageRepository() VoiceMessageRepository {
	return &gormVoiceMessageRepository{}
}

func (r *gormVoiceMessageRepository) Create(ctx context.Context, tx *gorm.DB, message *model.VoiceMessage) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(message)
	if result.Error != nil {
		logger.Error("Error creating voice message in DB",
			"error", result.Error,
			"user_id", message.UserID.String(),
		)
		return fmt.Errorf("gormVoiceMessageRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVoiceMessageRepository) FindByID(ctx context.Context, db *gorm.DB, messageID uuid.UUID) (*model.VoiceMessage, error) {
	logger := middleware.GetLogger(ctx)
	var message model.VoiceMessage
	result := db.WithContext(ctx).
		Where("message_id = ?", messageID).
		First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding voice message in DB",
			"error", result.Error,
			"message_id", messageID.String(),
		)
		return nil, fmt.Errorf("gormVoiceMessageRepository.FindByID: %w", result.Error)
	}
	return &message, nil
}

func (r *gormVoiceMessageRepository) FindByIDs(ctx context.Context, db *gorm.DB, messageIDs []uuid.UUID) ([]*model.VoiceMessage, error) {
	logger := middleware.GetLogger(ctx)
	if len(messageIDs) == 0 {
		return nil, nil
	}
	var messages []*model.VoiceMessage
	result := db.WithContext(ctx).
		Where("message_id IN ?", messageIDs).
		Find(&messages)
	if result.Error != nil {
		logger.Error("Error finding voice messages in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVoiceMessageRepository.FindByIDs: %w", result.Error)
	}
	return messages, nil
}

// FindAllWithDetails は管理画面向けに、投稿者名とトラック・週の文脈付きの
// メッセージ一覧を新しい順に返します。トラックに紐づかないメッセージも
// 含めるため LEFT JOIN にする。
func (r *gormVoiceMessageRepository) FindAllWithDetails(ctx context.Context, db *gorm.DB) ([]*model.VoiceMessageListItemResponse, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.VoiceMessageListItemResponse
	result := db.WithContext(ctx).Model(&model.VoiceMessage{}).
		Select(`voice_messages.message_id,
			voice_messages.file_url,
			voice_messages.viewed,
			voice_messages.created_at,
			users.user_id,
			users.username,
			tracks.track_id,
			tracks.title AS track_title,
			weeks.title AS week_title,
			weeks.display_order AS week_order`).
		Joins("JOIN users ON users.user_id = voice_messages.user_id").
		Joins("LEFT JOIN tracks ON tracks.track_id = voice_messages.track_id").
		Joins("LEFT JOIN weeks ON weeks.week_id = tracks.week_id").
		Order("voice_messages.created_at DESC").
		Scan(&items)
	if result.Error != nil {
		logger.Error("Error listing voice messages with details in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVoiceMessageRepository.FindAllWithDetails: %w", result.Error)
	}
	return items, nil
}

func (r *gormVoiceMessageRepository) UpdateViewed(ctx context.Context, tx *gorm.DB, messageID uuid.UUID, viewed bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.VoiceMessage{}).
		Where("message_id = ?", messageID).
		Update("viewed", viewed)
	if result.Error != nil {
		logger.Error("Error updating voice message viewed flag in DB",
			"error", result.Error,
			"message_id", messageID.String(),
		)
		return fmt.Errorf("gormVoiceMessageRepository.UpdateViewed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVoiceMessageRepository) Delete(ctx context.Context, tx *gorm.DB, messageID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("message_id = ?", messageID).
		Delete(&model.VoiceMessage{})
	if result.Error != nil {
		logger.Error("Error deleting voice message in DB",
			"error", result.Error,
			"message_id", messageID.String(),
		)
		return fmt.Errorf("gormVoiceMessageRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVoiceMessageRepository) DeleteByIDs(ctx context.Context, tx *gorm.DB, messageIDs []uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	if len(messageIDs) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).Where("message_id IN ?", messageIDs).Delete(&model.VoiceMessage{})
	if result.Error != nil {
		logger.Error("Error deleting voice messages in DB", "error", result.Error)
		return 0, fmt.Errorf("gormVoiceMessageRepository.DeleteByIDs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
