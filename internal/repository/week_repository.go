//go:generate mockery --name WeekRepository --output ./mocks --outpkg mocks --case=underscore
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

// WeekRepository インターフェース
type WeekRepository interface {
	Create(ctx context.Context, tx *gorm.DB, week *model.Week) error
	FindByID(ctx context.Context, db *gorm.DB, weekID uuid.UUID) (*model.Week, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Week, error)
	Update(ctx context.Context, tx *gorm.DB, weekID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, weekID uuid.UUID) error
	MaxOrder(ctx context.Context, db *gorm.DB) (int, error)
}

type gormWeekRepository struct{}

func NewGormWeekRepository() WeekRepository {
	return &gormWeekRepository{}
}

func (r *gormWeekRepository) Create(ctx context.Context, tx *gorm.DB, week *model.Week) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(week)
	if result.Error != nil {
		logger.Error("Error creating week in DB",
			"error", result.Error,
			"title", week.Title,
		)
		return fmt.Errorf("gormWeekRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWeekRepository) FindByID(ctx context.Context, db *gorm.DB, weekID uuid.UUID) (*model.Week, error) {
	logger := middleware.GetLogger(ctx)
	var week model.Week
	result := db.WithContext(ctx).Where("week_id = ?", weekID).First(&week)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding week by ID in DB",
			"error", result.Error,
			"week_id", weekID.String(),
		)
		return nil, fmt.Errorf("gormWeekRepository.FindByID: %w", result.Error)
	}
	return &week, nil
}

func (r *gormWeekRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Week, error) {
	logger := middleware.GetLogger(ctx)
	var weeks []*model.Week
	result := db.WithContext(ctx).Order("display_order ASC, created_at ASC").Find(&weeks)
	if result.Error != nil {
		logger.Error("Error finding weeks in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWeekRepository.FindAll: %w", result.Error)
	}
	return weeks, nil
}

func (r *gormWeekRepository) Update(ctx context.Context, tx *gorm.DB, weekID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Week{}).Where("week_id = ?", weekID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating week in DB",
			"error", result.Error,
			"week_id", weekID.String(),
		)
		return fmt.Errorf("gormWeekRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は週と、その週が所有するコンテンツ・進捗・回答をまとめて削除します。
// 呼び出し元のトランザクション内で実行される想定です（カスケード所有権）。
func (r *gormWeekRepository) Delete(ctx context.Context, tx *gorm.DB, weekID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	trackIDs := tx.Model(&model.Track{}).Select("track_id").Where("week_id = ?", weekID)
	if err := tx.WithContext(ctx).Where("track_id IN (?)", trackIDs).Delete(&model.ListeningProgress{}).Error; err != nil {
		logger.Error("Error deleting listening progress for week", "error", err, "week_id", weekID.String())
		return fmt.Errorf("gormWeekRepository.Delete(progress): %w", err)
	}

	questionIDs := tx.Model(&model.Question{}).Select("question_id").Where("week_id = ?", weekID)
	if err := tx.WithContext(ctx).Where("question_id IN (?)", questionIDs).Delete(&model.Answer{}).Error; err != nil {
		logger.Error("Error deleting answers for week", "error", err, "week_id", weekID.String())
		return fmt.Errorf("gormWeekRepository.Delete(answers): %w", err)
	}

	if err := tx.WithContext(ctx).Where("week_id = ?", weekID).Delete(&model.Track{}).Error; err != nil {
		logger.Error("Error deleting tracks for week", "error", err, "week_id", weekID.String())
		return fmt.Errorf("gormWeekRepository.Delete(tracks): %w", err)
	}
	if err := tx.WithContext(ctx).Where("week_id = ?", weekID).Delete(&model.Question{}).Error; err != nil {
		logger.Error("Error deleting questions for week", "error", err, "week_id", weekID.String())
		return fmt.Errorf("gormWeekRepository.Delete(questions): %w", err)
	}

	result := tx.WithContext(ctx).Where("week_id = ?", weekID).Delete(&model.Week{})
	if result.Error != nil {
		logger.Error("Error deleting week in DB", "error", result.Error, "week_id", weekID.String())
		return fmt.Errorf("gormWeekRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MaxOrder は週全体での最大 order を返します（行がなければ 0）。
func (r *gormWeekRepository) MaxOrder(ctx context.Context, db *gorm.DB) (int, error) {
	logger := middleware.GetLogger(ctx)
	var max int
	result := db.WithContext(ctx).Model(&model.Week{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max)
	if result.Error != nil {
		logger.Error("Error querying max week order in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWeekRepository.MaxOrder: %w", result.Error)
	}
	return max, nil
}
