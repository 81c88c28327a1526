// internal/service/content_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentService はトラックと設問のCRUDを担当します。
// 両者は週の中で1本の order 空間を共有するため、採番はここで一元管理します。
type ContentService interface {
	CreateTrack(ctx context.Context, req *model.PostTrackRequest) (*model.Track, error)
	// UploadTrack はメディア本体を保存してから AUDIO トラックとして登録します。
	UploadTrack(ctx context.Context, req *model.UploadTrackRequest) (*model.Track, error)
	GetTrack(ctx context.Context, trackID uuid.UUID) (*model.Track, error)
	UpdateTrack(ctx context.Context, trackID uuid.UUID, req *model.PutTrackRequest) (*model.Track, error)
	DeleteTrack(ctx context.Context, trackID uuid.UUID) error

	CreateQuestions(ctx context.Context, req *model.PostQuestionsRequest) ([]*model.Question, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	UpdateQuestion(ctx context.Context, questionID uuid.UUID, req *model.PutQuestionRequest) (*model.Question, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) error
}

type contentService struct {
	db           *gorm.DB // トランザクション用にDB接続を持つ
	weekRepo     repository.WeekRepository
	trackRepo    repository.TrackRepository
	questionRepo repository.QuestionRepository
	media        MediaStore
}

func NewContentService(db *gorm.DB, weekRepo repository.WeekRepository, trackRepo repository.TrackRepository, questionRepo repository.QuestionRepository, media MediaStore) ContentService {
	return &contentService{
		db:           db,
		weekRepo:     weekRepo,
		trackRepo:    trackRepo,
		questionRepo: questionRepo,
		media:        media,
	}
}

// nextOrder は週内の次の並び順を採番します。
// トラックと設問は同じ order 空間を共有するので、必ず両方のテーブルの
// 最大値を見てから +1 する。片方だけ見ると交互に追加したとき重複する。
func (s *contentService) nextOrder(ctx context.Context, tx *gorm.DB, weekID uuid.UUID) (int, error) {
	trackMax, err := s.trackRepo.MaxOrder(ctx, tx, weekID)
	if err != nil {
		return 0, err
	}
	questionMax, err := s.questionRepo.MaxOrder(ctx, tx, weekID)
	if err != nil {
		return 0, err
	}
	max := trackMax
	if questionMax > max {
		max = questionMax
	}
	return max + 1, nil
}

func (s *contentService) CreateTrack(ctx context.Context, req *model.PostTrackRequest) (*model.Track, error) {
	logger := middleware.GetLogger(ctx)

	var createdTrack *model.Track

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 週の存在確認
		if _, err := s.weekRepo.FindByID(ctx, tx, req.WeekID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "週が見つかりません", "week_id", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}

		// 2. 並び順を採番
		order, err := s.nextOrder(ctx, tx, req.WeekID)
		if err != nil {
			logger.Error("Error allocating order for track", "error", err, "week_id", req.WeekID.String())
			return model.ErrInternalServer
		}

		// 3. トラックを作成
		track := &model.Track{
			TrackID: uuid.New(),
			WeekID:  req.WeekID,
			Title:   req.Title,
			FileURL: req.FileURL,
			Kind:    req.Kind,
			Order:   order,
		}
		if err := s.trackRepo.Create(ctx, tx, track); err != nil {
			logger.Error("Error creating track in transaction", "error", err)
			return model.ErrInternalServer
		}

		createdTrack = track
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateTrack", "error", err)
		return nil, model.ErrInternalServer
	}

	return createdTrack, nil
}

// UploadTrack はファイル本体を MediaStore に保存し、返ってきたURLで
// AUDIO トラックを登録します。保存はトランザクションの外で先に行う。
// 登録に失敗したら保存済みファイルはベストエフォートで消す。
func (s *contentService) UploadTrack(ctx context.Context, req *model.UploadTrackRequest) (*model.Track, error) {
	logger := middleware.GetLogger(ctx)

	key := "tracks/" + uuid.New().String() + "-" + req.Filename
	fileURL, err := s.media.Store(ctx, key, req.File, req.ContentType)
	if err != nil {
		logger.Error("Error storing uploaded track media", "error", err, "key", key)
		return nil, model.ErrInternalServer
	}

	track, err := s.CreateTrack(ctx, &model.PostTrackRequest{
		WeekID:  req.WeekID,
		Title:   req.Title,
		FileURL: fileURL,
		Kind:    model.MediaKindAudio,
	})
	if err != nil {
		if delErr := s.media.Delete(ctx, fileURL); delErr != nil {
			logger.Warn("Failed to delete media file after track registration failure", "error", delErr, "file_url", fileURL)
		}
		return nil, err
	}

	return track, nil
}

func (s *contentService) GetTrack(ctx context.Context, trackID uuid.UUID) (*model.Track, error) {
	track, err := s.trackRepo.FindByID(ctx, s.db, trackID)
	if err != nil {
		return nil, err
	}
	return track, nil
}

func (s *contentService) UpdateTrack(ctx context.Context, trackID uuid.UUID, req *model.PutTrackRequest) (*model.Track, error) {
	logger := middleware.GetLogger(ctx)

	var updatedTrack *model.Track

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.trackRepo.FindByID(ctx, tx, trackID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title": req.Title,
		}
		if err := s.trackRepo.Update(ctx, tx, trackID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error updating track in transaction", "error", err)
			return model.ErrInternalServer
		}

		var err error
		updatedTrack, err = s.trackRepo.FindByID(ctx, tx, trackID)
		if err != nil {
			logger.Error("Error fetching updated track in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateTrack", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedTrack, nil
}

// DeleteTrack はトラックと紐づく進捗を削除します。
// メディアファイルの削除はコミット後のベストエフォート。
func (s *contentService) DeleteTrack(ctx context.Context, trackID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	var fileURL string
	var kind model.MediaKind

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		track, err := s.trackRepo.FindByID(ctx, tx, trackID)
		if err != nil {
			return err
		}
		fileURL = track.FileURL
		kind = track.Kind

		if err := s.trackRepo.Delete(ctx, tx, trackID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting track in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteTrack", "error", err)
		return model.ErrInternalServer
	}

	// 外部動画はURLを預かっているだけなので消さない
	if kind == model.MediaKindAudio {
		if err := s.media.Delete(ctx, fileURL); err != nil {
			logger.Warn("Failed to delete media file after track deletion", "error", err, "file_url", fileURL)
		}
	}

	return nil
}

// CreateQuestions は複数の設問を一括登録します。
// 採番はトランザクション内で一度だけ最大値を読み、以降はローカルで
// インクリメントする。バッチ内の設問は連番になる。
func (s *contentService) CreateQuestions(ctx context.Context, req *model.PostQuestionsRequest) ([]*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	// 空行は登録しない
	texts := make([]string, 0, len(req.Texts))
	for _, t := range req.Texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		texts = append(texts, t)
	}
	if len(texts) == 0 {
		return nil, model.NewAppError("INVALID_INPUT", "設問の本文が1件もありません", "texts", model.ErrInvalidInput)
	}

	var created []*model.Question

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 週の存在確認
		if _, err := s.weekRepo.FindByID(ctx, tx, req.WeekID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "週が見つかりません", "week_id", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}

		// 2. 先頭の並び順を採番
		order, err := s.nextOrder(ctx, tx, req.WeekID)
		if err != nil {
			logger.Error("Error allocating order for questions", "error", err, "week_id", req.WeekID.String())
			return model.ErrInternalServer
		}

		// 3. 設問を連番で作成
		for _, text := range texts {
			question := &model.Question{
				QuestionID: uuid.New(),
				WeekID:     req.WeekID,
				Text:       text,
				Order:      order,
			}
			if err := s.questionRepo.Create(ctx, tx, question); err != nil {
				logger.Error("Error creating question in transaction", "error", err)
				return model.ErrInternalServer
			}
			created = append(created, question)
			order++
		}
		return nil // コミット
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateQuestions", "error", err)
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *contentService) GetQuestion(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, s.db, questionID)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (s *contentService) UpdateQuestion(ctx context.Context, questionID uuid.UUID, req *model.PutQuestionRequest) (*model.Question, error) {
	logger := middleware.GetLogger(ctx)

	var updatedQuestion *model.Question

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.questionRepo.FindByID(ctx, tx, questionID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"text": req.Text,
		}
		if err := s.questionRepo.Update(ctx, tx, questionID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error updating question in transaction", "error", err)
			return model.ErrInternalServer
		}

		var err error
		updatedQuestion, err = s.questionRepo.FindByID(ctx, tx, questionID)
		if err != nil {
			logger.Error("Error fetching updated question in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateQuestion", "error", err)
		return nil, model.ErrInternalServer
	}

	return updatedQuestion, nil
}

// DeleteQuestion は設問と紐づく回答を削除します。
func (s *contentService) DeleteQuestion(ctx context.Context, questionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.Delete(ctx, tx, questionID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error deleting question in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Transaction failed for DeleteQuestion", "error", err)
		return model.ErrInternalServer
	}

	return nil
}
