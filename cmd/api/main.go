package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todoboard/config"
	_ "todoboard/docs" // Swagger docs
	"todoboard/internal/httpserver"
	storeSync "todoboard/internal/sync"
	"todoboard/internal/todo/repository/remotestore"
	"todoboard/internal/todo/usecase"
	"todoboard/pkg/log"
)

// @title       Todo Board API
// @description To-do list view over a remote document store, with embedded-metadata records and live change notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Board...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Store.URL)

	// 3. Todo domain
	storeClient := remotestore.NewClient(cfg.Store.URL, cfg.Store.AccessToken)
	todoRepo := remotestore.New(storeClient, logger)
	todoUC := usecase.New(logger, todoRepo)

	// Warm the snapshot; a cold start is fine, the first list relists anyway.
	if err := todoUC.Relist(ctx); err != nil {
		logger.Warnf(ctx, "Initial relist failed (store unreachable?): %v", err)
	}

	// 4. Store change subscription (best-effort)
	var syncHandler storeSync.Handler
	if cfg.Webhook.Enabled {
		hub := storeSync.NewHub()
		hub.Start()

		validator := storeSync.NewSecurityValidator(storeSync.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		})
		syncHandler = storeSync.NewWebhookHandler(todoUC, hub, validator, logger)
	} else {
		logger.Warn(ctx, "Webhook disabled: change subscription off, board converges on demand")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TodoUseCase: todoUC,
		SyncHandler: syncHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
