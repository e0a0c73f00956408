package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/recipes/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_RoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := domain.Recipe{
		ID:          9,
		Title:       "Carrot Cake",
		IsPublished: true,
		CreatedAt:   created,
		Category:    &domain.Category{ID: 1, Name: "Desserts"},
	}

	doc := toDocument(r, created)
	assert.Equal(t, "9", doc.docID())

	back := doc.toDomain()
	assert.Equal(t, r.Title, back.Title)
	assert.Equal(t, r.Category, back.Category)
	assert.NotNil(t, back.Tags)
}

func TestSearcher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Elasticsearch integration test in short mode")
	}

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)
	cfg := ClientConfig{Addresses: []string{container.Address}, IndexName: "recipes_test"}

	indexer, err := NewIndexer(ctx, cfg)
	require.NoError(t, err)

	err = indexer.SaveBulk(ctx, []domain.Recipe{
		{ID: 1, Title: "Carrot Cake", Description: "Soft and sweet", IsPublished: true},
		{ID: 2, Title: "Chocolate Cake", Description: "Rich dessert", IsPublished: true},
		{ID: 3, Title: "Secret Cake", Description: "Draft", IsPublished: false},
		{ID: 4, Title: "Scrambled Eggs", Description: "Breakfast", IsPublished: true},
	})
	require.NoError(t, err)

	searcher, err := NewSearcher(cfg)
	require.NoError(t, err)

	page, _, err := pagination.Paginate(ctx, searcher.Search("cake"), pagination.NewRequest("1", 1, 4))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Chocolate Cake", page.Items[0].Title)

	page, _, err = pagination.Paginate(ctx, searcher.Search("CARR"), pagination.NewRequest("1", 5, 4))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Items[0].ID)

	page, _, err = pagination.Paginate(ctx, searcher.Search("fast"), pagination.NewRequest("1", 5, 4))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Scrambled Eggs", page.Items[0].Title)

	require.NoError(t, indexer.Delete(ctx, 2))
	require.NoError(t, indexer.Delete(ctx, 2))
}

func TestBuildQuery(t *testing.T) {
	q := buildQuery("50% off*")

	require.NotNil(t, q.Bool)
	require.Len(t, q.Bool.Should, 2)
	for i, field := range []string{"title.keyword", "description.keyword"} {
		wq, ok := q.Bool.Should[i].Wildcard[field]
		require.True(t, ok, field)
		assert.Equal(t, `*50% off\**`, *wq.Value)
		assert.True(t, *wq.CaseInsensitive)
	}
	assert.Equal(t, 1, q.Bool.MinimumShouldMatch)
	require.Len(t, q.Bool.Filter, 1)
	assert.Contains(t, q.Bool.Filter[0].Term, "is_published")
}
