// internal/service/answer_service.go
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

// AnswerService は設問への回答の提出と閲覧を担当します。
type AnswerService interface {
	// SubmitAnswer は回答を1件追加します。同じ設問への再提出も
	// 新しい行として積む（上書きしない）。
	SubmitAnswer(ctx context.Context, userID uuid.UUID, req *model.PostAnswerRequest) (*model.Answer, error)
	// ListMyAnswers はログインユーザー自身の回答一覧。questionID で絞り込める。
	ListMyAnswers(ctx context.Context, userID uuid.UUID, questionID *uuid.UUID) ([]*model.Answer, error)
	// ListAnswers は管理者向けの横断一覧。weekID で絞り込める。
	ListAnswers(ctx context.Context, weekID *uuid.UUID) ([]*model.AnswerListItemResponse, error)
	// DeleteAnswers は管理者向けの一括削除。
	DeleteAnswers(ctx context.Context, req *model.BatchDeleteAnswersRequest) (int64, error)
}

type answerService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

func NewAnswerService(db *gorm.DB, questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{
		db:           db,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

func (s *answerService) SubmitAnswer(ctx context.Context, userID uuid.UUID, req *model.PostAnswerRequest) (*model.Answer, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.Answer

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 設問の存在確認
		if _, err := s.questionRepo.FindByID(ctx, tx, req.QuestionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "設問が見つかりません", "question_id", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}

		// 2. 回答を追加
		answer := &model.Answer{
			AnswerID:   uuid.New(),
			UserID:     userID,
			QuestionID: req.QuestionID,
			Text:       req.Text,
		}
		if err := s.answerRepo.Create(ctx, tx, answer); err != nil {
			logger.Error("Error creating answer in transaction", "error", err)
			return model.ErrInternalServer
		}

		created = answer
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitAnswer", "error", err)
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *answerService) ListMyAnswers(ctx context.Context, userID uuid.UUID, questionID *uuid.UUID) ([]*model.Answer, error) {
	logger := middleware.GetLogger(ctx)

	// 絞り込み指定があれば設問の存在確認
	if questionID != nil {
		if _, err := s.questionRepo.FindByID(ctx, s.db, *questionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.ErrNotFound
			}
			return nil, model.ErrInternalServer
		}
	}

	answers, err := s.answerRepo.FindByUser(ctx, s.db, userID, questionID)
	if err != nil {
		logger.Error("Error listing answers", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	return answers, nil
}

func (s *answerService) ListAnswers(ctx context.Context, weekID *uuid.UUID) ([]*model.AnswerListItemResponse, error) {
	logger := middleware.GetLogger(ctx)
	items, err := s.answerRepo.FindAllWithDetails(ctx, s.db, weekID)
	if err != nil {
		logger.Error("Error listing answers with details", "error", err)
		return nil, model.ErrInternalServer
	}
	return items, nil
}

func (s *answerService) DeleteAnswers(ctx context.Context, req *model.BatchDeleteAnswersRequest) (int64, error) {
	logger := middleware.GetLogger(ctx)

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = s.answerRepo.DeleteByIDs(ctx, tx, req.IDs)
		if err != nil {
			logger.Error("Error deleting answers in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		logger.Error("Transaction failed for DeleteAnswers", "error", err)
		return 0, model.ErrInternalServer
	}

	return deleted, nil
}
