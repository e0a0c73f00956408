package storage

import (
	"context"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
)

// Reader exposes published recipes as lazily evaluated result sets.
// Nothing is queried until the result set is counted or sliced.
type Reader interface {
	// Published returns the published recipes matching filter, newest first
	Published(filter domain.Filter) pagination.ResultSet[domain.Recipe]
	// Get returns a published recipe or ErrNotFound
	Get(ctx context.Context, id int64) (*domain.Recipe, error)
	Category(ctx context.Context, id int64) (*domain.Category, error)
	Author(ctx context.Context, id int64) (*domain.Author, error)
	TagBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	TagByID(ctx context.Context, id int64) (*domain.Tag, error)
}

// Store is a primary store: everything the service reads and writes.
type Store interface {
	Reader
	Storer
	Healthy(ctx context.Context) bool
	Close()
}
