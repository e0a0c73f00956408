package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/storage"
	"github.com/DjordjeVuckovic/recipes/internal/storage/factory"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := factory.NewStore(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	indexer, err := factory.NewIndexer(ctx, *cfg.Search)
	if err != nil {
		slog.Error("failed to create indexer", "error", err)
		os.Exit(1)
	}

	indexed, err := reindex(ctx, store, indexer, cfg.BatchSize)
	if err != nil {
		slog.Error("failed to reindex recipes", "error", err, "indexed", indexed)
		os.Exit(1)
	}
	slog.Info("Reindex finished", "indexed", indexed)
}

// reindex copies every published recipe of reader into the index, one page
// per bulk request.
func reindex(ctx context.Context, reader storage.Reader, indexer storage.Indexer, batchSize int) (int, error) {
	if err := indexer.EnsureIndex(ctx); err != nil {
		return 0, err
	}

	rs := reader.Published(domain.Filter{})
	indexed := 0
	for number := pagination.FirstPage; ; number++ {
		req := pagination.NewRequest(strconv.Itoa(number), batchSize, pagination.WindowDefaultSize)
		page, _, err := pagination.Paginate(ctx, rs, req)
		if err != nil {
			return indexed, err
		}
		// out of range numbers fall back to page 1
		if page.Number != number || len(page.Items) == 0 {
			break
		}

		if err := indexer.SaveBulk(ctx, page.Items); err != nil {
			return indexed, err
		}
		indexed += len(page.Items)
		slog.Info("Indexed batch", "page", page.Number, "of", page.TotalPages, "count", len(page.Items))

		if !page.HasNext() {
			break
		}
	}
	return indexed, nil
}
