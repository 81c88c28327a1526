//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository インターフェース
type ProgressRepository interface {
	// UpsertProgress は (user_id, track_id) ごとに1行を保証するアトミックな upsert です。
	// 既存行がある場合、position は上書き、completed は一度 true になったら戻りません。
	// listen_count はここでは変更しません。
	UpsertProgress(ctx context.Context, tx *gorm.DB, progress *model.ListeningProgress) error
	// UpsertCompletion は listen_count を +1 し completed を true にします。
	// 唯一の listen_count 更新経路です。
	UpsertCompletion(ctx context.Context, tx *gorm.DB, progress *model.ListeningProgress) error
	FindByUserAndTrack(ctx context.Context, db *gorm.DB, userID, trackID uuid.UUID) (*model.ListeningProgress, error)
	FindByUserAndTracks(ctx context.Context, db *gorm.DB, userID uuid.UUID, trackIDs []uuid.UUID) ([]*model.ListeningProgress, error)
	FindByTrack(ctx context.Context, db *gorm.DB, trackID uuid.UUID, limit int) ([]*model.ListeningProgress, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) UpsertProgress(ctx context.Context, tx *gorm.DB, progress *model.ListeningProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "track_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"position":         gorm.Expr("excluded.position"),
			"completed":        gorm.Expr("listening_progress.completed OR excluded.completed"),
			"last_listened_at": gorm.Expr("excluded.last_listened_at"),
		}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting listening progress in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
			"track_id", progress.TrackID.String(),
		)
		return fmt.Errorf("gormProgressRepository.UpsertProgress: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) UpsertCompletion(ctx context.Context, tx *gorm.DB, progress *model.ListeningProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "track_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"listen_count":     gorm.Expr("listening_progress.listen_count + 1"),
			"completed":        true,
			"last_listened_at": gorm.Expr("excluded.last_listened_at"),
		}),
	}).Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting listen completion in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
			"track_id", progress.TrackID.String(),
		)
		return fmt.Errorf("gormProgressRepository.UpsertCompletion: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndTrack(ctx context.Context, db *gorm.DB, userID, trackID uuid.UUID) (*model.ListeningProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.ListeningProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding listening progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"track_id", trackID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndTrack: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUserAndTracks(ctx context.Context, db *gorm.DB, userID uuid.UUID, trackIDs []uuid.UUID) ([]*model.ListeningProgress, error) {
	logger := middleware.GetLogger(ctx)
	if len(trackIDs) == 0 {
		return nil, nil
	}
	var progresses []*model.ListeningProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND track_id IN ?", userID, trackIDs).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding listening progresses in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndTracks: %w", result.Error)
	}
	return progresses, nil
}

// FindByTrack はトラックの受講者一覧を最終再生日時の降順で返します。
func (r *gormProgressRepository) FindByTrack(ctx context.Context, db *gorm.DB, trackID uuid.UUID, limit int) ([]*model.ListeningProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.ListeningProgress
	query := db.WithContext(ctx).
		Preload("User").
		Where("track_id = ?", trackID).
		Order("last_listened_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding listeners by track in DB",
			"error", result.Error,
			"track_id", trackID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByTrack: %w", result.Error)
	}
	return progresses, nil
}
