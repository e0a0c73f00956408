package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/recipes/internal/storage"
	"github.com/DjordjeVuckovic/recipes/internal/storage/es"
	"github.com/DjordjeVuckovic/recipes/internal/storage/pg"
	"github.com/DjordjeVuckovic/recipes/pkg/utils"
)

type StorageConfig struct {
	storage.Type
	Pg       *pg.PoolConfig
	SeedFile string
	Search   *SearchConfig
}

// SearchConfig selects a dedicated search backend. Nil means the primary store searches.
type SearchConfig struct {
	storage.Type
	Es *es.ClientConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE environment variable is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{
		Type:     storageType,
		SeedFile: os.Getenv("SEED_FILE"),
	}

	if storageType == storage.PG {
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	search, err := loadSearchEnv()
	if err != nil {
		return nil, err
	}
	cfg.Search = search

	return cfg, nil
}

func loadSearchEnv() (*SearchConfig, error) {
	searchType := storage.Type(os.Getenv("SEARCH_TYPE"))
	switch searchType {
	case "":
		return nil, nil
	case storage.ES:
		esCfg, err := LoadEsEnv()
		if err != nil {
			return nil, err
		}
		return &SearchConfig{Type: storage.ES, Es: esCfg}, nil
	default:
		slog.Error("Invalid SEARCH_TYPE environment variable value", "value", searchType)
		return nil, fmt.Errorf("invalid SEARCH_TYPE environment variable value: %s, expected %s or empty", searchType, storage.ES)
	}
}

// LoadEsEnv reads the Elasticsearch connection from ES_* variables.
func LoadEsEnv() (*es.ClientConfig, error) {
	esCfg := &es.ClientConfig{
		Addresses: utils.RemoveEmptyStrings(utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ",")),
		IndexName: os.Getenv("ES_INDEX_NAME"),
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}
	if esCfg.IndexName == "" {
		esCfg.IndexName = "recipes"
	}
	if len(esCfg.Addresses) == 0 {
		slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
		return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
	}
	return esCfg, nil
}
