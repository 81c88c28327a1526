// internal/handlers/message_handler.go
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

type MessageHandler struct {
	service service.MessageService
	logger  *slog.Logger
}

func NewMessageHandler(s service.MessageService, logger *slog.Logger) *MessageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageHandler{
		service: s,
		logger:  logger,
	}
}

// PostMessage は音声メッセージを投稿するためのハンドラ。
// multipart/form-data で file と省略可能な track_id を受け取る。
func (h *MessageHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostMessage"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Missing file in multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "ファイルが添付されていません。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	var trackID *uuid.UUID
	if raw := r.FormValue("track_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Invalid track_id in multipart form", slog.String("error", err.Error()))
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "track_idの形式が正しくありません。", "track_id", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		trackID = &id
	}

	req := model.SubmitMessageRequest{
		TrackID:     trackID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	}

	if !validateRequest(w, logger, req) {
		return
	}

	message, err := h.service.SubmitMessage(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error submitting voice message in service", slog.Any("error", err), slog.String("filename", req.Filename))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Voice message submitted successfully", slog.String("message_id", message.MessageID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, message, logger)
}

// GetMessages は管理画面向けのメッセージ一覧（投稿者・トラック・週付き）を
// 返すためのハンドラ
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMessages"))

	items, err := h.service.ListMessages(r.Context())
	if err != nil {
		logger.Error("Error listing voice messages in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.VoiceMessageListItemResponse{}
	}
	logger.Info("Voice messages listed successfully", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// PatchMessage は既読フラグを更新するためのハンドラ
func (h *MessageHandler) PatchMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchMessage"))

	messageID, ok := parseUUIDParam(w, r, logger, "message_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("message_id", messageID.String()))

	var req model.PatchMessageRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	message, err := h.service.MarkViewed(r.Context(), messageID, *req.Viewed)
	if err != nil {
		logger.Error("Error updating voice message in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Voice message updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, message, logger)
}

// DeleteMessage はメッセージとメディアファイルを削除するためのハンドラ
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMessage"))

	messageID, ok := parseUUIDParam(w, r, logger, "message_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("message_id", messageID.String()))

	if err := h.service.DeleteMessage(r.Context(), messageID); err != nil {
		logger.Error("Error deleting voice message in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Voice message deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMessages はメッセージを一括削除するためのハンドラ
func (h *MessageHandler) DeleteMessages(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMessages"))

	var req model.BatchDeleteMessagesRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	deleted, err := h.service.DeleteMessages(r.Context(), &req)
	if err != nil {
		logger.Error("Error deleting voice messages in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Voice messages deleted successfully", slog.Int64("deleted", deleted))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]int64{"deleted": deleted}, logger)
}
