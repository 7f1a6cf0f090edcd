package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/kirinyoku/holidaze/docs"
	"github.com/kirinyoku/holidaze/internal/app"
	"github.com/kirinyoku/holidaze/internal/config"
)

// @title Holidaze API
// @version 1.0
// @description Venue search and booking service.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
