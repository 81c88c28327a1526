package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"go_5_listen_keep/internal/config"
	"go_5_listen_keep/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3MediaStore は AWS S3 上の音声ファイルを扱う実装です
type S3MediaStore struct {
	client *s3.Client
	cfg    *config.MediaConfig
}

// NewS3MediaStore は設定に応じて認証方法を切り替えてS3クライアントを生成します
func NewS3MediaStore(cfg *config.Config) MediaStore {
	// AWS SDKに渡す設定オプションのスライスを準備
	var awsCfgOpts []func(*awsconfig.LoadOptions) error

	// 必須のリージョン設定を追加
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.Media.Region))

	// 設定ファイルに基づき、認証方法を決定
	switch cfg.Media.AuthType {
	case "static_credentials":
		// --- 静的認証情報 (アクセスキー) を使う場合 ---
		slog.Info("Configuring S3 with static credentials.")
		if cfg.Media.AccessKeyID == "" || cfg.Media.SecretAccessKey == "" {
			slog.Error("Media auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 起動時にpanicさせることで、設定ミスに即座に気づけるようにする
			panic("missing static credentials for S3")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.Media.AccessKeyID,
			cfg.Media.SecretAccessKey,
			"", // Session Token (通常は不要)
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		// --- IAMロール (ECS Task Role, EC2 Instance Profileなど) を使う場合 ---
		slog.Info("Configuring S3 with IAM Role credentials.")
		// この場合、SDKが自動で認証情報を探してくれるので、特別な設定は不要

	default:
		slog.Warn("Unknown media auth_type specified, defaulting to IAM Role.", "type", cfg.Media.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for S3", "error", err)
		panic(err)
	}

	return &S3MediaStore{
		client: s3.NewFromConfig(awsCfg),
		cfg:    &cfg.Media,
	}
}

// Store はオブジェクトをアップロードして公開URLを返します
func (s *S3MediaStore) Store(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	logger := middleware.GetLogger(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Failed to store media file to S3", "error", err, "bucket", s.cfg.Bucket, "key", key)
		return "", err
	}

	fileURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	logger.Info("Media file stored to S3", "bucket", s.cfg.Bucket, "key", key)
	return fileURL, nil
}

// Delete はファイルURLからオブジェクトキーを割り出してS3から削除します。
// 外部動画URLなどバケット外のURLは黙ってスキップします。
func (s *S3MediaStore) Delete(ctx context.Context, fileURL string) error {
	logger := middleware.GetLogger(ctx)

	key, ok := s.objectKey(fileURL)
	if !ok {
		logger.Debug("File URL is not in the media bucket, skipping delete", "file_url", fileURL)
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("Failed to delete media file from S3", "error", err, "bucket", s.cfg.Bucket, "key", key)
		return err
	}

	logger.Info("Media file deleted from S3", "bucket", s.cfg.Bucket, "key", key)
	return nil
}

// objectKey は https://<bucket>.s3.<region>.amazonaws.com/<key> 形式のURLから
// オブジェクトキーを取り出します。
func (s *S3MediaStore) objectKey(fileURL string) (string, bool) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(u.Host, s.cfg.Bucket+".") {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", false
	}
	return key, true
}
