// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_listen_keep/internal/config"
	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService は再生進捗の記録と参照を担当します。
type ProgressService interface {
	// RecordProgress は再生位置と完了フラグを記録します。
	// position は last-write-wins、completed は片方向ラッチ。
	// listen_count は初回書き込みが completed=true のときだけ 1 で初期化し、
	// 既存行の更新では一切触らない。
	RecordProgress(ctx context.Context, userID uuid.UUID, req *model.PostProgressRequest) (*model.ListeningProgress, error)
	// RecordCompletion は「聴き切った」イベントを記録し listen_count を+1します。
	// リトライで二重送信されると2回数えるが、カウントを失うよりはよい
	// (at-least-once)。冪等化はしない。
	RecordCompletion(ctx context.Context, userID uuid.UUID, req *model.PostCompletionRequest) (*model.ListeningProgress, error)
	GetProgress(ctx context.Context, userID, trackID uuid.UUID) (*model.ListeningProgress, error)
	// ListTrackListeners は管理者向けにトラックの視聴状況を返します。
	ListTrackListeners(ctx context.Context, trackID uuid.UUID) ([]*model.TrackListenerResponse, error)
}

type progressService struct {
	db           *gorm.DB
	trackRepo    repository.TrackRepository
	progressRepo repository.ProgressRepository
}

func NewProgressService(db *gorm.DB, trackRepo repository.TrackRepository, progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{
		db:           db,
		trackRepo:    trackRepo,
		progressRepo: progressRepo,
	}
}

func (s *progressService) RecordProgress(ctx context.Context, userID uuid.UUID, req *model.PostProgressRequest) (*model.ListeningProgress, error) {
	logger := middleware.GetLogger(ctx)

	var saved *model.ListeningProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. トラックの存在確認
		if _, err := s.trackRepo.FindByID(ctx, tx, req.TrackID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "トラックが見つかりません", "track_id", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}

		// 2. アトミックな upsert（read-modify-write はしない）。
		//    初回書き込みが completed=true を伴う場合は listen_count=1 で挿入する。
		//    既存行がある場合は UpsertProgress が listen_count に触らないので
		//    この値は使われない。
		listenCount := 0
		if req.Completed {
			listenCount = 1
		}
		progress := &model.ListeningProgress{
			ProgressID:     uuid.New(),
			UserID:         userID,
			TrackID:        req.TrackID,
			Position:       *req.Position,
			Completed:      req.Completed,
			ListenCount:    listenCount,
			LastListenedAt: time.Now(),
		}
		if err := s.progressRepo.UpsertProgress(ctx, tx, progress); err != nil {
			logger.Error("Error upserting progress in transaction", "error", err)
			return model.ErrInternalServer
		}

		// 3. upsert 後の確定値を読み直す（ラッチ済みの completed 等を反映）
		var err error
		saved, err = s.progressRepo.FindByUserAndTrack(ctx, tx, userID, req.TrackID)
		if err != nil {
			logger.Error("Error fetching progress after upsert", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for RecordProgress", "error", err)
		return nil, model.ErrInternalServer
	}

	return saved, nil
}

func (s *progressService) RecordCompletion(ctx context.Context, userID uuid.UUID, req *model.PostCompletionRequest) (*model.ListeningProgress, error) {
	logger := middleware.GetLogger(ctx)

	var saved *model.ListeningProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. トラックの存在確認
		track, err := s.trackRepo.FindByID(ctx, tx, req.TrackID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "トラックが見つかりません", "track_id", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}

		// 2. 完了イベントを upsert。初回は listen_count=1 で挿入、
		//    以降は SQL 側で +1 する。position はクライアントが別途
		//    RecordProgress で送るのでここでは触らない。
		progress := &model.ListeningProgress{
			ProgressID:     uuid.New(),
			UserID:         userID,
			TrackID:        track.TrackID,
			Position:       0,
			Completed:      true,
			ListenCount:    1,
			LastListenedAt: time.Now(),
		}
		if err := s.progressRepo.UpsertCompletion(ctx, tx, progress); err != nil {
			logger.Error("Error upserting completion in transaction", "error", err)
			return model.ErrInternalServer
		}

		saved, err = s.progressRepo.FindByUserAndTrack(ctx, tx, userID, track.TrackID)
		if err != nil {
			logger.Error("Error fetching progress after completion", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for RecordCompletion", "error", err)
		return nil, model.ErrInternalServer
	}

	return saved, nil
}

func (s *progressService) GetProgress(ctx context.Context, userID, trackID uuid.UUID) (*model.ListeningProgress, error) {
	progress, err := s.progressRepo.FindByUserAndTrack(ctx, s.db, userID, trackID)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// ListTrackListeners はトラックの視聴状況を生の行のまま返します（集計しない）。
func (s *progressService) ListTrackListeners(ctx context.Context, trackID uuid.UUID) ([]*model.TrackListenerResponse, error) {
	logger := middleware.GetLogger(ctx)

	// トラックの存在確認
	if _, err := s.trackRepo.FindByID(ctx, s.db, trackID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, model.ErrInternalServer
	}

	progresses, err := s.progressRepo.FindByTrack(ctx, s.db, trackID, config.Cfg.App.ListenersLimit)
	if err != nil {
		logger.Error("Error listing track listeners", "error", err, "track_id", trackID.String())
		return nil, model.ErrInternalServer
	}

	listeners := make([]*model.TrackListenerResponse, 0, len(progresses))
	for _, p := range progresses {
		listener := &model.TrackListenerResponse{
			UserID:         p.UserID,
			Position:       p.Position,
			Completed:      p.Completed,
			ListenCount:    p.ListenCount,
			LastListenedAt: p.LastListenedAt,
		}
		if p.User != nil {
			listener.Username = p.User.Username
		}
		listeners = append(listeners, listener)
	}
	return listeners, nil
}
