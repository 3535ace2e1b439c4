package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pantry-assistant/config"
	"pantry-assistant/internal/httpserver"
	voiceDelivery "pantry-assistant/internal/pantry/delivery/voice"
	restRepo "pantry-assistant/internal/pantry/repository/rest"
	"pantry-assistant/internal/pantry/usecase"
	"pantry-assistant/internal/webhook"
	"pantry-assistant/pkg/log"
)

// @title       Pantry Assistant API
// @description Voice-assistant webhook that turns spoken commands into pantry mutations.
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

	logger.Info(ctx, "Starting Pantry Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Pantry store URL: %s", cfg.PantryStore.URL)

	// 3. Pantry domain
	storeClient := restRepo.NewClient(cfg.PantryStore.URL, cfg.PantryStore.AccessToken, cfg.PantryStore.Timeout)
	pantryRepo := restRepo.New(storeClient, logger)

	pantryUC := usecase.New(logger, pantryRepo, cfg.Skill.PageSize)

	var verifier *webhook.Validator
	if cfg.Webhook.Enabled {
		verifier = webhook.NewValidator(webhook.Config{
			AppID:              cfg.Skill.AppID,
			TimestampTolerance: cfg.Webhook.TimestampTolerance,
			RateLimitPerMin:    cfg.Webhook.RateLimitPerMin,
			DedupSize:          cfg.Webhook.DedupSize,
		})
	} else {
		logger.Warn(ctx, "Webhook verification disabled")
	}

	voiceHandler := voiceDelivery.New(logger, pantryUC, verifier)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		VoiceHandler: voiceHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
