package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/database"
	"github.com/pageza/recipebook/backend/internal/logging"
	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/seed"
	"github.com/pageza/recipebook/backend/internal/server"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.Environment.IsProduction())
	logger.Info("configuration loaded", "environment", cfg.Environment.String(), "addr", cfg.Addr())

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize services
	recipes := service.NewRecipeService(store.New(),
		service.WithLogger(logger),
		service.WithNotifier(service.LogNotifier{Logger: logger}),
		service.WithScalePolicy(service.NewScalePolicy(cfg.ScaleFactors...)),
		service.WithResetThresholdCheck(cfg.ResetChecksThreshold),
	)

	if cfg.SeedFile != "" {
		seeded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to load seed file %s: %w", cfg.SeedFile, err)
		}
		n, err := seed.Apply(ctx, recipes, seeded)
		if err != nil {
			return fmt.Errorf("failed to seed recipes: %w", err)
		}
		logger.Info("seeded recipes", "path", cfg.SeedFile, "count", n)
	}

	var limiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			logger.Warn("rate limiting disabled", "error", err)
		} else {
			defer client.Close()
			limiter = middleware.NewRateLimiter(client, middleware.RateLimitConfig{
				Window: cfg.RateLimitWindow,
				Limit:  cfg.RateLimit,
			}, logger)
		}
	}

	// Create and start server
	srv := server.New(cfg, recipes, limiter, logger)
	return srv.Start(ctx)
}
