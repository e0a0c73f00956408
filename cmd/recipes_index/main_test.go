package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIndexer struct {
	batches [][]int64
}

func (r *recordingIndexer) EnsureIndex(context.Context) error { return nil }

func (r *recordingIndexer) SaveBulk(_ context.Context, recipes []domain.Recipe) error {
	var ids []int64
	for _, rc := range recipes {
		ids = append(ids, rc.ID)
	}
	r.batches = append(r.batches, ids)
	return nil
}

func (r *recordingIndexer) Delete(context.Context, int64) error { return nil }

func TestReindex(t *testing.T) {
	store := in_mem.NewStore()
	var rs []domain.Recipe
	for i := 1; i <= 7; i++ {
		rs = append(rs, domain.Recipe{Title: fmt.Sprintf("Recipe %d", i), IsPublished: i != 4})
	}
	require.NoError(t, store.SaveBulk(context.Background(), rs))

	idx := &recordingIndexer{}
	indexed, err := reindex(context.Background(), store, idx, 4)
	require.NoError(t, err)

	assert.Equal(t, 6, indexed)
	assert.Equal(t, [][]int64{{7, 6, 5, 3}, {2, 1}}, idx.batches)
}

func TestReindex_Empty(t *testing.T) {
	idx := &recordingIndexer{}
	indexed, err := reindex(context.Background(), in_mem.NewStore(), idx, 4)
	require.NoError(t, err)

	assert.Zero(t, indexed)
	assert.Empty(t, idx.batches)
}
