//go:generate mockery --name QuestionRepository --output ./mocks --outpkg mocks --case=underscore
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

// QuestionRepository インターフェース
type QuestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, question *model.Question) error
	FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error)
	FindByWeek(ctx context.Context, db *gorm.DB, weekID uuid.UUID) ([]*model.Question, error)
	Update(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) error
	MaxOrder(ctx context.Context, db *gorm.DB, weekID uuid.UUID) (int, error)
}

type gormQuestionRepository struct{}

func NewGormQuestionRepository() QuestionRepository {
	return &gormQuestionRepository{}
}

func (r *gormQuestionRepository) Create(ctx context.Context, tx *gorm.DB, question *model.Question) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(question)
	if result.Error != nil {
		logger.Error("Error creating question in DB",
			"error", result.Error,
			"week_id", question.WeekID.String(),
		)
		return fmt.Errorf("gormQuestionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var question model.Question
	result := db.WithContext(ctx).Where("question_id = ?", questionID).First(&question)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding question by ID in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByID: %w", result.Error)
	}
	return &question, nil
}

func (r *gormQuestionRepository) FindByWeek(ctx context.Context, db *gorm.DB, weekID uuid.UUID) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)
	var questions []*model.Question
	result := db.WithContext(ctx).Where("week_id = ?", weekID).Order("display_order ASC, created_at ASC").Find(&questions)
	if result.Error != nil {
		logger.Error("Error finding questions by week in DB",
			"error", result.Error,
			"week_id", weekID.String(),
		)
		return nil, fmt.Errorf("gormQuestionRepository.FindByWeek: %w", result.Error)
	}
	return questions, nil
}

func (r *gormQuestionRepository) Update(ctx context.Context, tx *gorm.DB, questionID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Question{}).Where("question_id = ?", questionID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating question in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return fmt.Errorf("gormQuestionRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は設問と、それを参照する回答レコードを削除します。
func (r *gormQuestionRepository) Delete(ctx context.Context, tx *gorm.DB, questionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
		logger.Error("Error deleting answers for question", "error", err, "question_id", questionID.String())
		return fmt.Errorf("gormQuestionRepository.Delete(answers): %w", err)
	}

	result := tx.WithContext(ctx).Where("question_id = ?", questionID).Delete(&model.Question{})
	if result.Error != nil {
		logger.Error("Error deleting question in DB",
			"error", result.Error,
			"question_id", questionID.String(),
		)
		return fmt.Errorf("gormQuestionRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// MaxOrder は週内の設問の最大 order を返します（行がなければ 0）。
func (r *gormQuestionRepository) MaxOrder(ctx context.Context, db *gorm.DB, weekID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var max int
	result := db.WithContext(ctx).Model(&model.Question{}).
		Where("week_id = ?", weekID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max)
	if result.Error != nil {
		logger.Error("Error querying max question order in DB",
			"error", result.Error,
			"week_id", weekID.String(),
		)
		return 0, fmt.Errorf("gormQuestionRepository.MaxOrder: %w", result.Error)
	}
	return max, nil
}
