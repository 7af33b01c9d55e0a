package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"study-outline-tracker/config"
	_ "study-outline-tracker/docs" // Swagger docs
	"study-outline-tracker/internal/httpserver"
	"study-outline-tracker/internal/middleware"
	outlineHTTP "study-outline-tracker/internal/outline/delivery/http"
	"study-outline-tracker/internal/outline/parser"
	"study-outline-tracker/pkg/log"
)

// @title       Study Outline Tracker API
// @description Parses uploaded outline documents into subjects with task completion counts.
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

	logger.Info(ctx, "Starting Study Outline Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Upload limit: %d bytes, extensions: %v",
		cfg.Upload.MaxSizeBytes, cfg.Upload.AllowedExtensions)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		MiddlewareConfig: middleware.Config{
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.RateLimitPerMin,
		},
		Parser: parser.New(),
		UploadPolicy: outlineHTTP.UploadPolicy{
			MaxSizeBytes:      cfg.Upload.MaxSizeBytes,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		},
		CacheEntries: cfg.Cache.ParseEntries,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
