package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/recipes/internal/storage/factory"
	"github.com/DjordjeVuckovic/recipes/pkg/config/env"
	"github.com/DjordjeVuckovic/recipes/pkg/utils"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

// DefaultBatchSize is the number of recipes sent per bulk request.
const DefaultBatchSize = 100

type IndexConfig struct {
	factory.StorageConfig
	BatchSize int
}

func (as *AppConfig) Load() (*IndexConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/recipes_index/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	if storageCfg.Search == nil {
		slog.Error("SEARCH_TYPE environment variable is not set")
		return nil, fmt.Errorf("SEARCH_TYPE environment variable is not set, nothing to index into")
	}

	return &IndexConfig{
		StorageConfig: *storageCfg,
		BatchSize:     utils.EnvInt(os.Getenv("BULK_SIZE"), DefaultBatchSize),
	}, nil
}
