package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/recipes/internal/recipes"
	"github.com/DjordjeVuckovic/recipes/internal/storage/factory"
	"github.com/DjordjeVuckovic/recipes/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type RecipesAPIConfig struct {
	StorageConfig factory.StorageConfig
	Recipes       recipes.Config
}

func (as *AppConfig) Load() (*RecipesAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/recipes_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &RecipesAPIConfig{
		StorageConfig: *storageCfg,
		Recipes:       recipes.LoadConfig(),
	}, nil
}
