// Package main is the entrypoint for the TalkLens API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harithravi/talklens/internal/ai"
	"github.com/harithravi/talklens/internal/api"
	"github.com/harithravi/talklens/internal/api/handler"
	"github.com/harithravi/talklens/internal/api/response"
	"github.com/harithravi/talklens/internal/cache"
	"github.com/harithravi/talklens/internal/config"
	"github.com/harithravi/talklens/internal/insight"
	"github.com/harithravi/talklens/internal/retrieval"
	"github.com/harithravi/talklens/internal/store"
	"github.com/harithravi/talklens/internal/transcribe"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config, fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "ai_provider", cfg.AI.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to database
	pool, err := store.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	slog.Info("database connected")

	// 3. Run migrations
	if err := store.RunMigrations(cfg.Database.URL, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// 4. Create Redis cache
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("create redis cache: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected")

	// 5. Create the completion provider
	provider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		return fmt.Errorf("create AI provider: %w", err)
	}
	slog.Info("AI provider initialized", "provider", provider.Name())

	// 6. Create gateway clients and the store
	retriever := retrieval.NewHTTPClient(cfg.Retrieval)
	transcriber := transcribe.NewWhisperClient(
		cfg.Transcribe.BaseURL, cfg.Transcribe.APIKey, cfg.Transcribe.Model, cfg.Transcribe.Timeout)
	pgStore := store.NewPostgresStore(pool)

	// 7. Build the orchestrating service and wire handlers
	svc := insight.New(provider, retriever, transcriber, pgStore, redisCache, cfg.AI.InferenceTimeout)

	deps := api.Dependencies{
		HealthHandler: healthHandler(pgStore, redisCache),

		AdminSentimentHandler:        handler.NewAdminSentimentHandler(svc),
		CustomerSentimentHandler:     handler.NewCustomerSentimentHandler(svc),
		CheckTopicsHandler:           handler.NewCheckTopicsHandler(svc),
		QueryHandler:                 handler.NewQueryHandler(svc),
		AnalyseDataHandler:           handler.NewAnalyseDataHandler(svc),
		CategorizeIssueHandler:       handler.NewCategorizeIssueHandler(svc),
		TranscribeAndClassifyHandler: handler.NewTranscribeAndClassifyHandler(svc),
		ReportHandler:                handler.NewReportHandler(svc),
	}

	router := api.NewRouter(deps)

	// 8. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler checks database and cache connectivity.
func healthHandler(s store.Store, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"cache":    "ok",
		}

		if err := s.Ping(r.Context()); err != nil {
			checks["database"] = "degraded"
		}
		if err := c.Ping(r.Context()); err != nil {
			checks["cache"] = "degraded"
		}

		if checks["database"] != "ok" || checks["cache"] != "ok" {
			response.Error(w, http.StatusServiceUnavailable, "One or more services degraded")
			return
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"services": checks,
		})
	}
}
