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

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/handlers"
	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/repository"
	"go_5_flashcard_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar) // 動的に変更可能なレベル変数
	// config.yamlで設定したログレベルを設定
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
	// 開発環境では色付きのテキストログ、それ以外ではJSONログを使う
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
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
	log.Println("Log Config Loaded...")

	// Configファイルの読み込み完了後、アプリケーション全体のデフォルトロガーを設定
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name))

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

	if err := repository.Migrate(db, logger); err != nil {
		slog.Error("Error running database migration", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	prefRepo := repository.NewGormPreferenceRepository()
	classRepo := repository.NewGormClassRepository()
	lectureRepo := repository.NewGormLectureRepository()
	cardRepo := repository.NewGormCardRepository()
	notifRepo := repository.NewGormNotificationRepository()

	authService := service.NewAuthService(db, tenantRepo, prefRepo, &config.Cfg)
	classService := service.NewClassService(db, classRepo, lectureRepo, cardRepo)
	lectureService := service.NewLectureService(db, classRepo, lectureRepo, cardRepo)
	cardService := service.NewCardService(db, cardRepo, classRepo, lectureRepo, nil)
	reviewService := service.NewReviewService(db, cardRepo, prefRepo, nil)
	planService := service.NewPlanService(db, cardRepo, prefRepo, notifRepo, nil)
	prefService := service.NewPreferenceService(db, prefRepo, classRepo)

	notifier := service.NewNotifier(&config.Cfg)
	deliveryService := service.NewDeliveryService(db, notifRepo, cardRepo, tenantRepo, notifier, &config.Cfg, logger, nil)

	authHandler := handlers.NewAuthHandler(authService)
	classHandler := handlers.NewClassHandler(classService, logger)
	lectureHandler := handlers.NewLectureHandler(lectureService, logger)
	cardHandler := handlers.NewCardHandler(cardService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	planHandler := handlers.NewPlanHandler(planService)
	prefHandler := handlers.NewPreferenceHandler(prefService)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

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
		r.Post("/tenants", authHandler.Register) // テナント登録 (認証不要)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require Tenant ID) ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				// 開発用: X-Tenant-ID ヘッダーをそのまま信用する
				slog.Warn("Auth is disabled, applying development tenant header middleware")
				r.Use(middleware.DevTenantContextMiddleware)
			}

			r.Get("/me", authHandler.GetMe)

			// Class routes
			r.Route("/classes", func(r chi.Router) {
				r.Post("/", classHandler.PostClass)
				r.Get("/", classHandler.GetClasses)
				r.Get("/{class_id}", classHandler.GetClass)
				r.Put("/{class_id}", classHandler.PutClass)
				r.Delete("/{class_id}", classHandler.DeleteClass)
				r.Get("/{class_id}/lectures", lectureHandler.GetLectures)
				r.Post("/{class_id}/lectures", lectureHandler.PostLecture)
			})

			// Lecture routes
			r.Route("/lectures", func(r chi.Router) {
				r.Get("/{lecture_id}", lectureHandler.GetLecture)
				r.Delete("/{lecture_id}", lectureHandler.DeleteLecture)
			})

			// Card routes
			r.Route("/cards", func(r chi.Router) {
				r.Post("/", cardHandler.PostCard)
				r.Get("/", cardHandler.GetCards)
				r.Get("/{card_id}", cardHandler.GetCard)
				r.Put("/{card_id}", cardHandler.PutCard)
				r.Patch("/{card_id}", cardHandler.PatchCard)
				r.Delete("/{card_id}", cardHandler.DeleteCard)
				r.Post("/{card_id}/deactivate", cardHandler.DeactivateCard)
				r.Post("/{card_id}/reactivate", cardHandler.ReactivateCard)
			})

			// Review routes
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/today", reviewHandler.GetTodayCards)
				r.Put("/{card_id}/answer", reviewHandler.SubmitAnswer)
				r.Get("/{card_id}/promotion", reviewHandler.GetPromotion)
				r.Post("/{card_id}/promotion", reviewHandler.PostPromotion)
			})

			// Notification plan / preference routes
			r.Get("/plan/notifications", planHandler.GetNotificationPlan)
			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", prefHandler.GetPreferences)
				r.Patch("/", prefHandler.PatchPreferences)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		err = sqlDB.PingContext(r.Context())
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Delivery Worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go deliveryService.Run(workerCtx)

	// 6. Start Server
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

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
