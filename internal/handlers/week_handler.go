// internal/handlers/week_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/service"
	"go_5_listen_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type WeekHandler struct {
	weekService   service.WeekService
	streamService service.StreamService
	logger        *slog.Logger
}

func NewWeekHandler(weekService service.WeekService, streamService service.StreamService, logger *slog.Logger) *WeekHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeekHandler{
		weekService:   weekService,
		streamService: streamService,
		logger:        logger,
	}
}

// PostWeek は新しい週リソースを作成するためのハンドラ
func (h *WeekHandler) PostWeek(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWeek"))

	var req model.PostWeekRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	week, err := h.weekService.CreateWeek(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating week in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Week created successfully", slog.String("week_id", week.WeekID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, week, logger)
}

// GetWeeks は週リソースの一覧を取得するためのハンドラ
func (h *WeekHandler) GetWeeks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeeks"))

	weeks, err := h.weekService.ListWeeks(r.Context())
	if err != nil {
		logger.Error("Error listing weeks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if weeks == nil {
		weeks = []*model.Week{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, weeks, logger)
}

// GetWeek は特定の週リソースを取得するためのハンドラ
func (h *WeekHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeek"))

	weekID, ok := parseUUIDParam(w, r, logger, "week_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("week_id", weekID.String()))

	week, err := h.weekService.GetWeek(r.Context(), weekID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Week not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting week from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, week, logger)
}

// PutWeek は特定の週リソースを置き換えるためのハンドラ
func (h *WeekHandler) PutWeek(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWeek"))

	weekID, ok := parseUUIDParam(w, r, logger, "week_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("week_id", weekID.String()))

	var req model.PutWeekRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	week, err := h.weekService.UpdateWeek(r.Context(), weekID, &req)
	if err != nil {
		logger.Error("Error updating week in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Week updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, week, logger)
}

// DeleteWeek は特定の週リソースを配下ごと削除するためのハンドラ
func (h *WeekHandler) DeleteWeek(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWeek"))

	weekID, ok := parseUUIDParam(w, r, logger, "week_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("week_id", weekID.String()))

	if err := h.weekService.DeleteWeek(r.Context(), weekID); err != nil {
		logger.Error("Error deleting week in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Week deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// GetWeekContent は週のトラックと設問を order 順にマージした
// ストリームを返すためのハンドラ（ユーザー状態は乗せない）
func (h *WeekHandler) GetWeekContent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeekContent"))

	weekID, ok := parseUUIDParam(w, r, logger, "week_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("week_id", weekID.String()))

	items, err := h.streamService.AssembleWeek(r.Context(), weekID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Week not found for content assembly", slog.Any("error", err))
		} else {
			logger.Error("Error assembling week content in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []model.ContentItem{}
	}
	logger.Info("Week content assembled successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetWeekStream は週のストリームにログインユーザーの進捗・回答状況を
// 重ねて返すためのハンドラ
func (h *WeekHandler) GetWeekStream(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeekStream"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	weekID, ok := parseUUIDParam(w, r, logger, "week_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("week_id", weekID.String()))

	items, err := h.streamService.ProjectWeek(r.Context(), userID, weekID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Week not found for stream projection", slog.Any("error", err))
		} else {
			logger.Error("Error projecting week stream in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []model.ProjectedItem{}
	}
	logger.Info("Week stream projected successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// parseUUIDParam はURLパラメータのUUIDを解析します。
// 失敗時はレスポンスまで書いて false を返します。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", name), slog.String("value", raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
