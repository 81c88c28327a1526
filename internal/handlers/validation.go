// internal/handlers/validation.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateRequest は共有バリデータでリクエストDTOを検証し、
// エラーがあればレスポンスまで書いて false を返します。
func validateRequest(w http.ResponseWriter, logger *slog.Logger, req interface{}) bool {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		// 日本語メッセージに翻訳
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
	} else {
		// バリデーションライブラリ自体のエラーなど、予期せぬエラー
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
	return false
}
