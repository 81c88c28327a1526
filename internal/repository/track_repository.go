//go:generate mockery --name TrackRepository --output ./mocks --outpkg mocks --case=underscore
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

// TrackRepository インターフェース
type TrackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, track *model.Track) error
	FindByID(ctx context.Context, db *gorm.DB, trackID uuid.UUID) (*model.Track, error)
	FindByWeek(ctx context.Context, db *gorm.DB, weekID uuid.UUID) ([]*model.Track, error)
	Update(ctx context.Context, tx *gorm.DB, trackID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, trackID uuid.UUID) error
	MaxOrder(ctx context.Context, db *gorm.DB, weekID uuid.UUID) (int, error)
}

type gormTrackRepository struct{}

func NewGormTrackRepository() TrackRepository {
	return &gormTrackRepository{}
}

func (r *gormTrackRepository) Create(ctx context.Context, tx *gorm.DB, track *model.Track) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(track)
	if result.Error != nil {
		logger.Error("Error creating track in DB",
			"error", result.Error,
			"week_id", track.WeekID.String(),
			"title", track.Title,
		)
		return fmt.Errorf("gormTrackRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTrackRepository) FindByID(ctx context.Context, db *gorm.DB, trackID uuid.UUID) (*model.Track, error) {
	logger := middleware.GetLogger(ctx)
	var track model.Track
	result := db.WithContext(ctx).Where("track_id = ?", trackID).First(&track)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding track by ID in DB",
			"error", result.Error,
			"track_id", trackID.String(),
		)
		return nil, fmt.Errorf("gormTrackRepository.FindByID: %w", result.Error)
	}
	return &track, nil
}

func (r *gormTrackRepository) FindByWeek(ctx context.Context, db *gorm.DB, weekID uuid.UUID) ([]*model.Track, error) {
	logger := middleware.GetLogger(ctx)
	var tracks []*model.Track
	result := db.WithContext(ctx).Where("week_id = ?", weekID).Order("display_order ASC, created_at ASC").Find(&tracks)
	if result.Error != nil {
		logger.Error("Error finding tracks by week in DB",
			"error", result.Error,
			"week_id", weekID.String(),
		)
		return nil, fmt.Errorf("gormTrackRepository.FindByWeek: %w", result.Error)
	}
	return tracks, nil
}

func (r *gormTrackRepository) Update(ctx context.Context, tx *gorm.DB, trackID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Track{}).Where("track_id = ?", trackID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating track in DB",
			"error", result.Error,
			"track_id", trackID.String(),
		)
		return fmt.Errorf("gormTrackRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はトラックと、それを参照する進捗レコードを削除します。
func (r *gormTrackRepository) Delete(ctx context.Context, tx *gorm.DB, trackID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("track_id = ?", trackID).Delete(&model.ListeningProgress{}).Error; err != nil {
		logger.Error("Error deleting listening progress for track", "error", err, "track_id", trackID.String())
		return fmt.Errorf("gormTrackRepository.Delete(progress): %w", err)
	}

	result := tx.WithContext(ctx).Where("track_id = ?", trackID).Delete(&model.Track{})
	if result.Error != nil {
		logger.Error("Error deleting track in DB",
			"error", result.Error,
			"track_id", trackID.String(),
		)
		return fmt.Errorf("gormTrackRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MaxOrder は週内のトラックの最大 order を返します（行がなければ 0）。
// 並び順キーは Question と共有のため、採番側は必ず両方の MaxOrder を見ること。
func (r *gormTrackRepository) MaxOrder(ctx context.Context, db *gorm.DB, weekID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var max int
	result := db.WithContext(ctx).Model(&model.Track{}).
		Where("week_id = ?", weekID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max)
	if result.Error != nil {
		logger.Error("Error querying max track order in DB",
			"error", result.Error,
			"week_id", weekID.String(),
		)
		return 0, fmt.Errorf("gormTrackRepository.MaxOrder: %w", result.Error)
	}
	return max, nil
}
