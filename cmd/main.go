// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_listen_keep/internal/config"
	"go_5_listen_keep/internal/handlers"
	"go_5_listen_keep/internal/middleware"
	"go_5_listen_keep/internal/repository"
	"go_5_listen_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar) // 動的に変更可能なレベル変数
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo) // 不明な場合はInfo
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// --- tint Handler を使用 ---
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	weekRepo := repository.NewGormWeekRepository()
	trackRepo := repository.NewGormTrackRepository()
	questionRepo := repository.NewGormQuestionRepository()
	progressRepo := repository.NewGormProgressRepository()
	answerRepo := repository.NewGormAnswerRepository()
	messageRepo := repository.NewGormVoiceMessageRepository()

	mediaStore := service.NewMediaStore(&config.Cfg)

	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	weekService := service.NewWeekService(db, weekRepo, trackRepo, mediaStore)
	contentService := service.NewContentService(db, weekRepo, trackRepo, questionRepo, mediaStore)
	streamService := service.NewStreamService(db, weekRepo, trackRepo, questionRepo, progressRepo, answerRepo)
	progressService := service.NewProgressService(db, trackRepo, progressRepo)
	answerService := service.NewAnswerService(db, questionRepo, answerRepo)
	messageService := service.NewMessageService(db, trackRepo, messageRepo, mediaStore)

	authHandler := handlers.NewAuthHandler(authService, logger)
	weekHandler := handlers.NewWeekHandler(weekService, streamService, logger)
	trackHandler := handlers.NewTrackHandler(contentService, logger)
	questionHandler := handlers.NewQuestionHandler(contentService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	answerHandler := handlers.NewAnswerHandler(answerService, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(progressService, logger)
	messageHandler := handlers.NewMessageHandler(messageService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger)) // slogを使うカスタムロガーミドルウェア

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/users/me", authHandler.GetMe)

			// Week routes
			r.Route("/weeks", func(r chi.Router) {
				r.Get("/", weekHandler.GetWeeks)
				r.Post("/", weekHandler.PostWeek)
				r.Get("/{week_id}", weekHandler.GetWeek)
				r.Put("/{week_id}", weekHandler.PutWeek)
				r.Delete("/{week_id}", weekHandler.DeleteWeek)
				r.Get("/{week_id}/content", weekHandler.GetWeekContent)
				r.Get("/{week_id}/stream", weekHandler.GetWeekStream)
			})

			// Track routes
			r.Route("/tracks", func(r chi.Router) {
				r.Post("/", trackHandler.PostTrack)
				r.Post("/upload", trackHandler.UploadTrack)
				r.Get("/{track_id}", trackHandler.GetTrack)
				r.Put("/{track_id}", trackHandler.PutTrack)
				r.Delete("/{track_id}", trackHandler.DeleteTrack)
			})

			// Question routes
			r.Route("/questions", func(r chi.Router) {
				r.Post("/", questionHandler.PostQuestions)
				r.Get("/{question_id}", questionHandler.GetQuestion)
				r.Put("/{question_id}", questionHandler.PutQuestion)
				r.Delete("/{question_id}", questionHandler.DeleteQuestion)
			})

			// Progress routes
			r.Route("/progress", func(r chi.Router) {
				r.Post("/", progressHandler.PostProgress)
				r.Post("/complete", progressHandler.PostCompletion)
				r.Get("/{track_id}", progressHandler.GetProgress)
			})

			// Answer routes
			r.Route("/answers", func(r chi.Router) {
				r.Post("/", answerHandler.PostAnswer)
				r.Get("/me", answerHandler.GetMyAnswers)
				r.Get("/", answerHandler.GetAnswers)
				r.Post("/batch-delete", answerHandler.DeleteAnswers)
			})

			// Voice message routes
			r.Route("/messages", func(r chi.Router) {
				r.Post("/", messageHandler.PostMessage)
				r.Get("/", messageHandler.GetMessages)
				r.Patch("/{message_id}", messageHandler.PatchMessage)
				r.Delete("/{message_id}", messageHandler.DeleteMessage)
				r.Post("/batch-delete", messageHandler.DeleteMessages)
			})

			// Analytics routes
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/tracks/{track_id}", analyticsHandler.GetTrackListeners)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1) // Listen失敗は致命的
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
