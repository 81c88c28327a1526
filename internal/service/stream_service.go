// internal/service/stream_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreamService は週のトラックと設問を1本のストリームに組み立て、
// ユーザーの進捗・回答状況を重ねて返します。
type StreamService interface {
	AssembleWeek(ctx context.Context, weekID uuid.UUID) ([]model.ContentItem, error)
	ProjectWeek(ctx context.Context, userID, weekID uuid.UUID) ([]model.ProjectedItem, error)
}

type streamService struct {
	db           *gorm.DB
	weekRepo     repository.WeekRepository
	trackRepo    repository.TrackRepository
	questionRepo repository.QuestionRepository
	progressRepo repository.ProgressRepository
	answerRepo   repository.AnswerRepository
}

func NewStreamService(db *gorm.DB, weekRepo repository.WeekRepository, trackRepo repository.TrackRepository, questionRepo repository.QuestionRepository, progressRepo repository.ProgressRepository, answerRepo repository.AnswerRepository) StreamService {
	return &streamService{
		db:           db,
		weekRepo:     weekRepo,
		trackRepo:    trackRepo,
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		answerRepo:   answerRepo,
	}
}

// sortContentItems は order ASC で並べます。order が重複していても
// エラーにはせず、created_at ASC → id ASC のタイブレークで
// 決定的な順序に畳み込みます。
func sortContentItems(items []model.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})
}

// AssembleWeek は週のトラックと設問を order 順にマージして返します。
// アイテムが1件もない週は空スライスを返す（エラーではない）。
func (s *streamService) AssembleWeek(ctx context.Context, weekID uuid.UUID) ([]model.ContentItem, error) {
	logger := middleware.GetLogger(ctx)

	// 週の存在確認
	if _, err := s.weekRepo.FindByID(ctx, s.db, weekID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding week for stream assembly", "error", err, "week_id", weekID.String())
		return nil, model.ErrInternalServer
	}

	tracks, err := s.trackRepo.FindByWeek(ctx, s.db, weekID)
	if err != nil {
		logger.Error("Error loading tracks for stream assembly", "error", err, "week_id", weekID.String())
		return nil, model.ErrInternalServer
	}
	questions, err := s.questionRepo.FindByWeek(ctx, s.db, weekID)
	if err != nil {
		logger.Error("Error loading questions for stream assembly", "error", err, "week_id", weekID.String())
		return nil, model.ErrInternalServer
	}

	items := make([]model.ContentItem, 0, len(tracks)+len(questions))
	for _, t := range tracks {
		items = append(items, model.NewTrackContentItem(t))
	}
	for _, q := range questions {
		items = append(items, model.NewQuestionContentItem(q))
	}

	sortContentItems(items)
	return items, nil
}

// ProjectWeek は組み立てたストリームにユーザー固有の状態を重ねます。
//   - トラック: 進捗（未再生なら nil）
//   - 設問:     回答済みフラグ
func (s *streamService) ProjectWeek(ctx context.Context, userID, weekID uuid.UUID) ([]model.ProjectedItem, error) {
	logger := middleware.GetLogger(ctx)

	items, err := s.AssembleWeek(ctx, weekID)
	if err != nil {
		return nil, err
	}

	trackIDs := make([]uuid.UUID, 0, len(items))
	questionIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case model.ContentTypeTrack:
			trackIDs = append(trackIDs, item.ID)
		case model.ContentTypeQuestion:
			questionIDs = append(questionIDs, item.ID)
		}
	}

	progresses, err := s.progressRepo.FindByUserAndTracks(ctx, s.db, userID, trackIDs)
	if err != nil {
		logger.Error("Error loading progresses for projection", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	progressByTrack := make(map[uuid.UUID]*model.ListeningProgress, len(progresses))
	for _, p := range progresses {
		progressByTrack[p.TrackID] = p
	}

	answered, err := s.answerRepo.FindAnsweredQuestionIDs(ctx, s.db, userID, questionIDs)
	if err != nil {
		logger.Error("Error loading answered questions for projection", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}

	projected := make([]model.ProjectedItem, 0, len(items))
	for _, item := range items {
		pi := model.ProjectedItem{Item: item}
		switch item.Type {
		case model.ContentTypeTrack:
			// 未再生のトラックは Progress = nil のまま返す
			if p, ok := progressByTrack[item.ID]; ok {
				pi.Progress = &model.ProgressView{
					Position:    p.Position,
					Completed:   p.Completed,
					ListenCount: p.ListenCount,
				}
			}
		case model.ContentTypeQuestion:
			pi.Answered = answered[item.ID]
		}
		projected = append(projected, pi)
	}

	return projected, nil
}
