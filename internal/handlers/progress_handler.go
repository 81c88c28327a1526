// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/service"
	"go_5_listen_keep/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// PostProgress は再生位置と完了フラグを記録するためのハンドラ。
// 再生回数はここでは増えない（/progress/complete だけが増やす）。
func (h *ProgressHandler) PostProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	progress, err := h.service.RecordProgress(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error recording progress in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress recorded successfully", slog.String("track_id", req.TrackID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// PostCompletion は「聴き切った」イベントを記録して再生回数を増やすためのハンドラ
func (h *ProgressHandler) PostCompletion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCompletion"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostCompletionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	progress, err := h.service.RecordCompletion(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error recording completion in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Completion recorded successfully",
		slog.String("track_id", req.TrackID.String()),
		slog.Int("listen_count", progress.ListenCount),
	)
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}

// GetProgress は特定トラックに対する自分の進捗を取得するためのハンドラ
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("track_id", trackID.String()))

	progress, err := h.service.GetProgress(r.Context(), userID, trackID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Progress not found", slog.Any("error", err))
		} else {
			logger.Error("Error getting progress from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
