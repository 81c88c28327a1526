package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go_5_listen_keep/internal/middleware"

	"go_5_listen_keep/internal/config"
)

// MediaStore は音声ファイルの保存先を抽象化します。
// アップロードの受け口と、トラックや週の削除時の後始末に使います。
type MediaStore interface {
	Store(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// --- LogMediaStore ---
// ローカル開発用。実際には何も保存・削除せず、ログに出すだけ。
type LogMediaStore struct{}

func (s *LogMediaStore) Store(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	logger := middleware.GetLogger(ctx)
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return "", err
	}
	logger.Info("--- Storing media file (LogMediaStore) ---", "key", key, "content_type", contentType, "size", n)
	return fmt.Sprintf("https://media.invalid/%s", key), nil
}

func (s *LogMediaStore) Delete(ctx context.Context, fileURL string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Deleting media file (LogMediaStore) ---", "file_url", fileURL)
	return nil
}

// --- NewMediaStore ファクトリ関数 ---
func NewMediaStore(cfg *config.Config) MediaStore {
	logger := slog.Default()
	switch cfg.Media.Provider {
	case "s3":
		logger.Info("Initializing S3 media store...")
		return NewS3MediaStore(cfg)
	case "log":
		logger.Info("Initializing Log media store...")
		return &LogMediaStore{}
	default:
		logger.Warn("Unknown media provider, defaulting to LogMediaStore", "provider", cfg.Media.Provider)
		return &LogMediaStore{}
	}
}
