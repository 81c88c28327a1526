// internal/handlers/track_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/service"
	"go_5_listen_keep/internal/webutil"

	"github.com/google/uuid"
)

type TrackHandler struct {
	service service.ContentService
	logger  *slog.Logger
}

func NewTrackHandler(s service.ContentService, logger *slog.Logger) *TrackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackHandler{
		service: s,
		logger:  logger,
	}
}

// PostTrack は新しいトラックリソースを作成するためのハンドラ。
// 並び順はサーバ側で採番するのでリクエストには含めない。
func (h *TrackHandler) PostTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTrack"))

	var req model.PostTrackRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	track, err := h.service.CreateTrack(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating track in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track created successfully", slog.String("track_id", track.TrackID.String()), slog.Int("order", track.Order))
	webutil.RespondWithJSON(w, http.StatusCreated, track, logger)
}

// アップロードで受け付けるリクエストボディの上限
const maxUploadBytes = 50 << 20

// UploadTrack はメディアファイル付きでトラックを作成するためのハンドラ。
// multipart/form-data で file, title, week_id を受け取り、
// 保存先URLの発行はサーバ側で行う。
func (h *TrackHandler) UploadTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UploadTrack"))

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

	weekID, err := uuid.Parse(r.FormValue("week_id"))
	if err != nil {
		logger.Warn("Invalid week_id in multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "week_idの形式が正しくありません。", "week_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.UploadTrackRequest{
		WeekID:      weekID,
		Title:       r.FormValue("title"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	}

	if !validateRequest(w, logger, req) {
		return
	}

	track, err := h.service.UploadTrack(r.Context(), &req)
	if err != nil {
		logger.Error("Error uploading track in service", slog.Any("error", err), slog.String("filename", req.Filename))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track uploaded successfully", slog.String("track_id", track.TrackID.String()), slog.Int("order", track.Order))
	webutil.RespondWithJSON(w, http.StatusCreated, track, logger)
}

// GetTrack は特定のトラックリソースを取得するためのハンドラ
func (h *TrackHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTrack"))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("track_id", trackID.String()))

	track, err := h.service.GetTrack(r.Context(), trackID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Track not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting track from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, track, logger)
}

// PutTrack はトラックのタイトルを更新するためのハンドラ
func (h *TrackHandler) PutTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTrack"))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("track_id", trackID.String()))

	var req model.PutTrackRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	track, err := h.service.UpdateTrack(r.Context(), trackID, &req)
	if err != nil {
		logger.Error("Error updating track in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, track, logger)
}

// DeleteTrack はトラックと紐づく進捗を削除するためのハンドラ
func (h *TrackHandler) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTrack"))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("track_id", trackID.String()))

	if err := h.service.DeleteTrack(r.Context(), trackID); err != nil {
		logger.Error("Error deleting track in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
