// internal/service/week_service.go
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

type WeekService interface {
	CreateWeek(ctx context.Context, req *model.PostWeekRequest) (*model.Week, error)
	GetWeek(ctx context.Context, weekID uuid.UUID) (*model.Week, error)
	ListWeeks(ctx context.Context) ([]*model.Week, error)
	UpdateWeek(ctx context.Context, weekID uuid.UUID, req *model.PutWeekRequest) (*model.Week, error)
	DeleteWeek(ctx context.Context, weekID uuid.UUID) error
}

type weekService struct {
	db        *gorm.DB // トランザクション用にDB接続を持つ
	weekRepo  repository.WeekRepository
	trackRepo repository.TrackRepository
	media     MediaStore
}

func NewWeekService(db *gorm.DB, weekRepo repository.WeekRepository, trackRepo repository.TrackRepository, media MediaStore) WeekService {
	return &weekService{
		db:        db,
		weekRepo:  weekRepo,
		trackRepo: trackRepo,
		media:     media,
	}
}

func (s *weekService) CreateWeek(ctx context.Context, req *model.PostWeekRequest) (*model.Week, error) {
	logger := middleware.GetLogger(ctx)

	var createdWeek *model.Week

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// order 未指定なら自動採番
		order := 0
		if req.Order != nil {
			order = *req.Order
		} else {
			max, err := s.weekRepo.MaxOrder(ctx, tx)
			if err != nil {
				logger.Error("Error getting max week order in transaction", "error", err)
				return model.ErrInternalServer
			}
			order = max + 1
		}

		week := &model.Week{
			WeekID: uuid.New(),
			Title:  req.Title,
			Order:  order,
		}
		if err := s.weekRepo.Create(ctx, tx, week); err != nil {
			logger.Error("Error creating week in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdWeek = week
		return nil // コミット
	})

	if err != nil {
		logger.Error("Transaction failed for CreateWeek", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdWeek, nil
}

func (s *weekService) GetWeek(ctx context.Context, weekID uuid.UUID) (*model.Week, error) {
	week, err := s.weekRepo.FindByID(ctx, s.db, weekID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return week, nil
}

func (s *weekService) ListWeeks(ctx context.Context) ([]*model.Week, error) {
	logger := middleware.GetLogger(ctx)
	weeks, err := s.weekRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing weeks", "error", err)
		return nil, model.ErrInternalServer
	}
	return weeks, nil
}

func (s *weekService) UpdateWeek(ctx context.Context, weekID uuid.UUID, req *model.PutWeekRequest) (*model.Week, error) {
	logger := middleware.GetLogger(ctx)

	var updatedWeek *model.Week

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.weekRepo.FindByID(ctx, tx, weekID); err != nil {
			return err // model.ErrNotFound or wrapped error
		}

		// 2. 更新実行 (PUT なので全項目を上書き)
		updates := map[string]interface{}{
			"title": req.Title,
		}
		if req.Order != nil {
			updates["display_order"] = *req.Order
		}
		if err := s.weekRepo.Update(ctx, tx, weekID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error updating week in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 更新後のデータを取得 (トランザクション内で取得するのが確実)
		var err error
		updatedWeek, err = s.weekRepo.FindByID(ctx, tx, weekID)
		if err != nil {
			logger.Error("Error fetching updated week in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateWeek", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedWeek, nil
}

// DeleteWeek は週と配下のトラック・設問・進捗・回答をまとめて削除します。
// メディアファイルの削除はコミット後のベストエフォートで、失敗してもAPIは成功扱い。
func (s *weekService) DeleteWeek(ctx context.Context, weekID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	var fileURLs []string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 消すべきメディアのURLを削除前に控えておく
		tracks, err := s.trackRepo.FindByWeek(ctx, tx, weekID)
		if err != nil {
			logger.Error("Error listing tracks for week deletion", "error", err)
			return model.ErrInternalServer
		}
		for _, t := range tracks {
			if t.Kind == model.MediaKindAudio {
				fileURLs = append(fileURLs, t.FileURL)
			}
		}

		if err := s.weekRepo.Delete(ctx, tx, weekID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting week in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteWeek", "error", err)
		return model.ErrInternalServer
	}

	// コミット後にメディアを後始末。失敗はログだけ残す。
	for _, fileURL := range fileURLs {
		if err := s.media.Delete(ctx, fileURL); err != nil {
			logger.Warn("Failed to delete media file after week deletion", "error", err, "file_url", fileURL)
		}
	}

	return nil
}
