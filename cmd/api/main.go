// Package main is the entry point for the Habit Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/infra/cache"
	"github.com/habit-tracker/backend/internal/infra/db"
	"github.com/habit-tracker/backend/internal/infra/dependency"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Habit Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"timezone", cfg.App.Location().String(),
	)

	accountDB, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer closeDatabase(accountDB)

	if err := accountDB.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.EmailQueueModel{},
		&model.DocumentModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	localDB, err := db.NewSQLiteConnection(&cfg.LocalStore)
	if err != nil {
		slog.Error("Local store failed to open", "error", err)
		os.Exit(1)
	}
	defer closeDatabase(localDB)

	if err := localDB.AutoMigrate(&model.DocumentModel{}); err != nil {
		slog.Error("Failed to run local store migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	checks := map[string]controller.HealthChecker{
		"database":    accountDB.HealthCheck,
		"local_store": localDB.HealthCheck,
		"redis":       nil,
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, running without analytics cache", "error", err)
			redisClient = nil
		} else {
			client := redisClient
			checks["redis"] = func() bool {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return client.Ping(ctx).Err() == nil
			}
			defer client.Close()
		}
	}

	injector := dependency.NewInjector(cfg, dependency.Connections{
		AccountDB: accountDB.DB(),
		LocalDB:   localDB.DB(),
		Redis:     redisClient,
	}, nil, checks)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	startEmailWorker(ctx, cfg, injector)
	go sweepRateLimiter(ctx, injector)

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func startEmailWorker(ctx context.Context, cfg *config.Config, injector *dependency.Injector) {
	if !cfg.Email.WorkerEnabled {
		slog.Info("Email worker disabled")
		return
	}
	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, goal emails stay queued")
		return
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		slog.Error("Failed to load email templates", "error", err)
		os.Exit(1)
	}

	worker := email.NewWorker(
		injector.EmailQueue,
		email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail),
		renderer,
		email.WorkerConfig{
			PollInterval:  cfg.Email.PollInterval,
			BatchSize:     cfg.Email.BatchSize,
			RetentionDays: cfg.Email.RetentionDays,
		},
	)
	go worker.Start(ctx)
}

func sweepRateLimiter(ctx context.Context, injector *dependency.Injector) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			injector.AuthRateLimiter.Cleanup()
		}
	}
}

func closeDatabase(database *db.Database) {
	if err := database.Close(); err != nil {
		slog.Error("Failed to close database connection", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
