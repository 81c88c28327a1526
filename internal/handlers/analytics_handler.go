// internal/handlers/analytics_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/service"
	"go_5_listen_keep/internal/webutil"
)

// AnalyticsHandler は管理画面向けの視聴状況APIを提供します。
// 返すのは生の進捗行だけで、集計はクライアントの責務。
type AnalyticsHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewAnalyticsHandler(s service.ProgressService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		service: s,
		logger:  logger,
	}
}

// GetTrackListeners はトラックごとの視聴状況一覧を返すためのハンドラ
func (h *AnalyticsHandler) GetTrackListeners(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTrackListeners"))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("track_id", trackID.String()))

	listeners, err := h.service.ListTrackListeners(r.Context(), trackID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Track not found for listener listing", slog.Any("error", err))
		} else {
			logger.Error("Error listing track listeners in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if listeners == nil {
		listeners = []*model.TrackListenerResponse{}
	}
	logger.Info("Track listeners listed successfully", slog.Int("count", len(listeners)))
	webutil.RespondWithJSON(w, http.StatusOK, listeners, logger)
}
