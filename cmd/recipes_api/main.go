// Package main Recipes API
// @title Recipes API
// @version 1.0
// @description Published recipes, paginated for listing pages and for the REST API
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/recipes/docs"
	"github.com/DjordjeVuckovic/recipes/internal/recipes"
	"github.com/DjordjeVuckovic/recipes/internal/router"
	"github.com/DjordjeVuckovic/recipes/internal/server"
	"github.com/DjordjeVuckovic/recipes/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/recipes/pkg/server"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := factory.NewStore(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	searcher, err := factory.NewSearcher(cfg.StorageConfig, store)
	if err != nil {
		slog.Error("Failed to create searcher", "error", err)
		os.Exit(1)
	}

	var opts []recipes.Option
	if cfg.StorageConfig.Search != nil {
		indexer, err := factory.NewIndexer(ctx, *cfg.StorageConfig.Search)
		if err != nil {
			slog.Error("Failed to create search indexer", "error", err)
			os.Exit(1)
		}
		opts = append(opts, recipes.WithIndexer(indexer))
		slog.Info("Search index sync enabled", "type", cfg.StorageConfig.Search.Type)
	}

	svc := recipes.NewService(store, searcher, cfg.Recipes, opts...)

	s := server.New(sCfg, pkgserver.NewCompositeHealthChecker(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	router.NewRecipeRouter(s.Echo, svc).Bind()
	router.NewAPIRouter(s.Echo, svc).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
