package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/recipes/internal/storage"
	"github.com/DjordjeVuckovic/recipes/internal/storage/es"
	"github.com/DjordjeVuckovic/recipes/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/recipes/internal/storage/pg"
)

// NewStore creates the primary storage.Store based on the storage type
func NewStore(ctx context.Context, cfg StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewStore(pool)

	case storage.InMem:
		s := in_mem.NewStore()
		if cfg.SeedFile != "" {
			if err := s.SeedFile(ctx, cfg.SeedFile); err != nil {
				return nil, fmt.Errorf("failed to seed in-memory storage: %w", err)
			}
		}
		return s, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewSearcher creates the search backend. Without a dedicated one configured,
// searches go through the primary store.
func NewSearcher(cfg StorageConfig, reader storage.Reader) (storage.Searcher, error) {
	if cfg.Search == nil {
		return storage.NewReaderSearcher(reader), nil
	}

	switch cfg.Search.Type {
	case storage.ES:
		if cfg.Search.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewSearcher(*cfg.Search.Es)

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Search.Type)
	}
}

// NewIndexer creates the indexer feeding the configured search backend.
func NewIndexer(ctx context.Context, cfg SearchConfig) (storage.Indexer, error) {
	switch cfg.Type {
	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewIndexer(ctx, *cfg.Es)

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
