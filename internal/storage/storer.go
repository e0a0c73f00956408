package storage

import (
	"context"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
)

// Storer persists recipes. Category, author and tags are referenced by ID.
type Storer interface {
	Save(ctx context.Context, recipe domain.Recipe) (int64, error)
	SaveBulk(ctx context.Context, recipes []domain.Recipe) error
	Update(ctx context.Context, id int64, patch domain.RecipePatch) (*domain.Recipe, error)
	Delete(ctx context.Context, id int64) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
	ErrNotFound          StorerError = "record not found"
)

func (e StorerError) Error() string {
	return string(e)
}
