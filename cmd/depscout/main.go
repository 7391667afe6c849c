package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/depscout/depscout/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.IsDev {
		logger = bootstrap.InitDevLogger()
	}

	logger.InfoContext(ctx, "starting depscout service",
		"addr", cfg.HTTP.Addr,
		"store_shards", cfg.Store.Shards,
		"sweeper_enabled", cfg.Sweeper.Enabled,
	)

	return bootstrap.Run(ctx, &cfg, logger)
}
