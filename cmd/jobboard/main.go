package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"job-board-web/internal/api"
	"job-board-web/internal/config"
	"job-board-web/internal/logging"
	"job-board-web/internal/storage"
	"job-board-web/internal/web"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Setup logging
	logger, logFile, err := logging.New(logging.Config{
		Level:      cfg.Monitoring.LogLevel,
		Format:     cfg.Monitoring.LogFormat,
		File:       cfg.Monitoring.LogFile,
		MaxSizeMB:  cfg.Monitoring.LogMaxSizeMB,
		MaxBackups: cfg.Monitoring.LogMaxBackups,
	})
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if !strings.EqualFold(cfg.Monitoring.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the submission log
	store := storage.OpenOrNop(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, logger)

	client := api.NewClient(cfg.API)
	srv, err := web.NewServer(cfg, web.Deps{
		Jobs:     api.NewJobService(client),
		Accounts: api.NewAccountService(client),
		Recorder: store,
	}, logger)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Run()
	}()

	// Wait for shutdown signal
	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down gracefully", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("job board shutdown complete")
}
