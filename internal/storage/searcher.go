package storage

import (
	"context"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
)

// Searcher matches a free text term against recipe titles and descriptions.
// Results are published recipes only, newest first.
type Searcher interface {
	Search(term string) pagination.ResultSet[domain.Recipe]
}

// Indexer feeds a secondary search index from the primary store.
type Indexer interface {
	EnsureIndex(ctx context.Context) error
	SaveBulk(ctx context.Context, recipes []domain.Recipe) error
	Delete(ctx context.Context, id int64) error
}

// ReaderSearcher searches through the primary store's own filtering.
type ReaderSearcher struct {
	reader Reader
}

func NewReaderSearcher(reader Reader) *ReaderSearcher {
	return &ReaderSearcher{reader: reader}
}

func (s *ReaderSearcher) Search(term string) pagination.ResultSet[domain.Recipe] {
	return s.reader.Published(domain.Filter{Search: term})
}
