package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ivkram/neuroguide-bot/internal/bot"
	"github.com/ivkram/neuroguide-bot/internal/conversation"
	"github.com/ivkram/neuroguide-bot/internal/dispatch"
	"github.com/ivkram/neuroguide-bot/internal/provider"
	"github.com/ivkram/neuroguide-bot/internal/storage"
	"github.com/ivkram/neuroguide-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig, logger)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Seed the catalog on first start
	if cfg.Catalog.SeedFile != "" {
		if err := storage.SeedCatalog(context.Background(), store, cfg.Catalog.SeedFile, logger); err != nil {
			logger.Warn("Failed to seed catalog", zap.Error(err))
		}
	}

	// Initialize providers
	prov := provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:         cfg.OpenAI.APIKey,
		Model:          cfg.OpenAI.Model,
		MaxTokens:      cfg.OpenAI.MaxTokens,
		Temperature:    cfg.OpenAI.Temperature,
		ImageModel:     cfg.OpenAI.ImageModel,
		ImageSize:      cfg.OpenAI.ImageSize,
		RequestTimeout: cfg.OpenAI.RequestTimeout,
	}, logger)

	// Initialize transport and dispatcher
	b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.PollTimeout, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	sessions := conversation.NewManager()
	dispatcher := dispatch.New(store, store, prov, prov, b, sessions, cfg.History.WriteRetries, logger)

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := b.Start(dispatcher); err != nil {
			logger.Error("Bot stopped with error", zap.Error(err))
		}
	}()

	logger.Info("Bot started")

	sig := <-sigChan
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	b.Stop()
}
