// internal/handlers/answer_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/service"
	"go_5_listen_keep/internal/webutil"

	"github.com/google/uuid"
)

type AnswerHandler struct {
	service service.AnswerService
	logger  *slog.Logger
}

func NewAnswerHandler(s service.AnswerService, logger *slog.Logger) *AnswerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnswerHandler{
		service: s,
		logger:  logger,
	}
}

// PostAnswer は設問への回答を提出するためのハンドラ。
// 同じ設問への再提出は上書きではなく新しい行として積まれる。
func (h *AnswerHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAnswer"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PostAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	answer, err := h.service.SubmitAnswer(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error submitting answer in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer submitted successfully", slog.String("answer_id", answer.AnswerID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, answer, logger)
}

// GetMyAnswers はログインユーザー自身の回答一覧を返すためのハンドラ。
// クエリパラメータ question_id で絞り込める。
func (h *AnswerHandler) GetMyAnswers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMyAnswers"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	questionID, ok := parseOptionalUUIDQuery(w, r, logger, "question_id")
	if !ok {
		return
	}

	answers, err := h.service.ListMyAnswers(r.Context(), userID, questionID)
	if err != nil {
		logger.Error("Error listing answers in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if answers == nil {
		answers = []*model.Answer{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, answers, logger)
}

// GetAnswers は管理画面向けの回答一覧（ユーザー名・設問・週付き）を
// 返すためのハンドラ。クエリパラメータ week_id で絞り込める。
func (h *AnswerHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAnswers"))

	weekID, ok := parseOptionalUUIDQuery(w, r, logger, "week_id")
	if !ok {
		return
	}

	items, err := h.service.ListAnswers(r.Context(), weekID)
	if err != nil {
		logger.Error("Error listing answers in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.AnswerListItemResponse{}
	}
	logger.Info("Answers listed successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// DeleteAnswers は回答を一括削除するためのハンドラ
func (h *AnswerHandler) DeleteAnswers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAnswers"))

	var req model.BatchDeleteAnswersRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	deleted, err := h.service.DeleteAnswers(r.Context(), &req)
	if err != nil {
		logger.Error("Error deleting answers in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answers deleted successfully", slog.Int64("deleted", deleted))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]int64{"deleted": deleted}, logger)
}

// parseOptionalUUIDQuery は省略可能なUUIDクエリパラメータを解析します。
// 不正な値のときはレスポンスまで書いて false を返します。
func parseOptionalUUIDQuery(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID format in query", slog.String("param", name), slog.String("value", raw), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_QUERY_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return nil, false
	}
	return &id, true
}
