// internal/handlers/question_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/service"
	"go_5_listen_keep/internal/webutil"
)

type QuestionHandler struct {
	service service.ContentService
	logger  *slog.Logger
}

func NewQuestionHandler(s service.ContentService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		service: s,
		logger:  logger,
	}
}

// PostQuestions は設問を一括登録するためのハンドラ。
// バッチ内の設問には連続した並び順が振られる。
func (h *QuestionHandler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuestions"))

	var req model.PostQuestionsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	questions, err := h.service.CreateQuestions(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating questions in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Questions created successfully", slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusCreated, questions, logger)
}

// GetQuestion は特定の設問リソースを取得するためのハンドラ
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuestion"))

	questionID, ok := parseUUIDParam(w, r, logger, "question_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	question, err := h.service.GetQuestion(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Question not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting question from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// PutQuestion は設問の本文を更新するためのハンドラ
func (h *QuestionHandler) PutQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutQuestion"))

	questionID, ok := parseUUIDParam(w, r, logger, "question_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	var req model.PutQuestionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), questionID, &req)
	if err != nil {
		logger.Error("Error updating question in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// DeleteQuestion は設問と紐づく回答を削除するためのハンドラ
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteQuestion"))

	questionID, ok := parseUUIDParam(w, r, logger, "question_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("question_id", questionID.String()))

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		logger.Error("Error deleting question in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
