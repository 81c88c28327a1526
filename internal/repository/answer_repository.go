//go:generate mockery --name AnswerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerRepository インターフェース
type AnswerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, answer *model.Answer) error
	// FindAnsweredQuestionIDs はユーザーが回答済みの設問IDの集合を返します。
	FindAnsweredQuestionIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionID *uuid.UUID) ([]*model.Answer, error)
	FindAllWithDetails(ctx context.Context, db *gorm.DB, weekID *uuid.UUID) ([]*model.AnswerListItemResponse, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, answerIDs []uuid.UUID) (int64, error)
}

type gormAnswerRepository struct{}

func NewGormAnswerRepository() AnswerRepository {
	return &gormAnswerRepository{}
}

func (r *gormAnswerRepository) Create(ctx context.Context, tx *gorm.DB, answer *model.Answer) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(answer)
	if result.Error != nil {
		logger.Error("Error creating answer in DB",
			"error", result.Error,
			"user_id", answer.UserID.String(),
			"question_id", answer.QuestionID.String(),
		)
		return fmt.Errorf("gormAnswerRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAnswerRepository) FindAnsweredQuestionIDs(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	logger := middleware.GetLogger(ctx)
	answered := make(map[uuid.UUID]bool, len(questionIDs))
	if len(questionIDs) == 0 {
		return answered, nil
	}
	var ids []uuid.UUID
	result := db.WithContext(ctx).Model(&model.Answer{}).
		Where("user_id = ? AND question_id IN ?", userID, questionIDs).
		Distinct().
		Pluck("question_id", &ids)
	if result.Error != nil {
		logger.Error("Error finding answered question IDs in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormAnswerRepository.FindAnsweredQuestionIDs: %w", result.Error)
	}
	for _, id := range ids {
		answered[id] = true
	}
	return answered, nil
}

// FindByUser はユーザーの回答を新しい順に返します。questionID を渡すと
// その設問に絞り込む。回答は複数回の提出を許容する設計で、並びを
// created_at DESC, answer_id DESC に固定して読み取りを決定的にする。
func (r *gormAnswerRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, questionID *uuid.UUID) ([]*model.Answer, error) {
	logger := middleware.GetLogger(ctx)
	var answers []*model.Answer
	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, answer_id DESC")
	if questionID != nil {
		query = query.Where("question_id = ?", *questionID)
	}
	result := query.Find(&answers)
	if result.Error != nil {
		logger.Error("Error finding answers in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormAnswerRepository.FindByUser: %w", result.Error)
	}
	return answers, nil
}

// FindAllWithDetails は管理画面向けに、ユーザー名・設問・週タイトル付きの回答一覧を返します。
func (r *gormAnswerRepository) FindAllWithDetails(ctx context.Context, db *gorm.DB, weekID *uuid.UUID) ([]*model.AnswerListItemResponse, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.AnswerListItemResponse
	query := db.WithContext(ctx).Model(&model.Answer{}).
		Select(`answers.answer_id,
			answers.text,
			answers.created_at,
			users.user_id,
			users.username,
			questions.question_id,
			questions.text AS question_text,
			weeks.title AS week_title,
			weeks.display_order AS week_order`).
		Joins("JOIN users ON users.user_id = answers.user_id").
		Joins("JOIN questions ON questions.question_id = answers.question_id").
		Joins("JOIN weeks ON weeks.week_id = questions.week_id").
		Order("answers.created_at DESC")
	if weekID != nil {
		query = query.Where("weeks.week_id = ?", *weekID)
	}
	result := query.Scan(&items)
	if result.Error != nil {
		logger.Error("Error listing answers with details in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAnswerRepository.FindAllWithDetails: %w", result.Error)
	}
	return items, nil
}

func (r *gormAnswerRepository) DeleteByIDs(ctx context.Context, tx *gorm.DB, answerIDs []uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	if len(answerIDs) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).Where("answer_id IN ?", answerIDs).Delete(&model.Answer{})
	if result.Error != nil {
		logger.Error("Error deleting answers in DB", "error", result.Error)
		return 0, fmt.Errorf("gormAnswerRepository.DeleteByIDs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
