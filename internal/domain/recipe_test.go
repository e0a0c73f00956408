package domain

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Pão de Queijo":          "pao-de-queijo",
		"Bolo de Cenoura":        "bolo-de-cenoura",
		"Recipe Title":           "recipe-title",
		"  Feijoada Light  ":     "feijoada-light",
		"Bolo (fácil)!":          "bolo-facil",
		"Torta de maçã & canela": "torta-de-maca-canela",
		"Café - com leite":       "cafe-com-leite",
		"Receita nº 2":           "receita-n-2",
	}
	for title, want := range tests {
		t.Run(title, func(t *testing.T) {
			assert.Equal(t, want, Slugify(title))
		})
	}
}

func TestAuthor_FullName(t *testing.T) {
	assert.Equal(t, "John Doe (jdoe)", Author{Username: "jdoe", FirstName: "John", LastName: "Doe"}.FullName())
	assert.Equal(t, "John (jdoe)", Author{Username: "jdoe", FirstName: "John"}.FullName())
	assert.Equal(t, "jdoe", Author{Username: "jdoe"}.FullName())
}

func TestRecipe_Preparation(t *testing.T) {
	r := Recipe{PreparationTime: 10, PreparationTimeUnit: PreparationTimeUnitMinutes}
	assert.Equal(t, "10 Minutos", r.Preparation())
}

func TestFilter_Matches(t *testing.T) {
	recipe := Recipe{
		Title:       "Carrot Cake",
		Description: "Soft and sweet",
		IsPublished: true,
		Category:    &Category{ID: 1, Name: "Desserts"},
		Tags:        []Tag{{ID: 1, Name: "Vegan", Slug: "vegan"}},
	}

	tests := []struct {
		name   string
		filter Filter
		recipe Recipe
		want   bool
	}{
		{name: "empty filter", filter: Filter{}, recipe: recipe, want: true},
		{name: "category matches", filter: Filter{CategoryID: 1}, recipe: recipe, want: true},
		{name: "category differs", filter: Filter{CategoryID: 2}, recipe: recipe, want: false},
		{name: "tag matches", filter: Filter{TagSlug: "vegan"}, recipe: recipe, want: true},
		{name: "tag differs", filter: Filter{TagSlug: "meat"}, recipe: recipe, want: false},
		{name: "search in title ignores case", filter: Filter{Search: "CARROT"}, recipe: recipe, want: true},
		{name: "search in description", filter: Filter{Search: "sweet"}, recipe: recipe, want: true},
		{name: "search misses", filter: Filter{Search: "pizza"}, recipe: recipe, want: false},
		{name: "unpublished never matches", filter: Filter{}, recipe: Recipe{Title: "Draft"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.recipe))
		})
	}
}

func TestRecipePatch_Validate(t *testing.T) {
	t.Run("valid partial update", func(t *testing.T) {
		assert.NoError(t, RecipePatch{Title: ptr("A new title")}.Validate())
	})

	t.Run("reports every bad field", func(t *testing.T) {
		err := RecipePatch{
			Title:           ptr("abc"),
			PreparationTime: ptr(0),
			Servings:        ptr(-1),
		}.Validate()

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "title")
		assert.Contains(t, ve.Fields, "preparation_time")
		assert.Contains(t, ve.Fields, "servings")
	})

	t.Run("description equal to title", func(t *testing.T) {
		err := RecipePatch{Title: ptr("Same text"), Description: ptr("Same text")}.Validate()

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Cannot be equal to title.", ve.Fields["description"])
	})

	t.Run("new recipe requires fields", func(t *testing.T) {
		err := RecipePatch{Title: ptr("Only a title")}.ValidateNew()

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "description")
		assert.Contains(t, ve.Fields, "preparation_steps")
		assert.NotContains(t, ve.Fields, "title")
	})
}

func TestRecipePatch_Apply(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := Recipe{Title: "Old title", Servings: 2}

	RecipePatch{Title: ptr("  New title  "), Servings: ptr(4)}.Apply(&r, now)

	assert.Equal(t, "New title", r.Title)
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, now, r.UpdatedAt)
}
