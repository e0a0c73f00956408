package es

import (
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
)

// Document is the recipe as stored in the search index. It carries everything
// a listing renders so search results need no round trip to the primary store.
type Document struct {
	ID                  int64            `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Slug                string           `json:"slug"`
	PreparationTime     int              `json:"preparation_time"`
	PreparationTimeUnit string           `json:"preparation_time_unit"`
	Servings            int              `json:"servings"`
	ServingsUnit        string           `json:"servings_unit"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	IsPublished         bool             `json:"is_published"`
	Cover               string           `json:"cover,omitempty"`
	Category            *domain.Category `json:"category,omitempty"`
	Author              *domain.Author   `json:"author,omitempty"`
	Tags                []domain.Tag     `json:"tags"`
	IndexedAt           time.Time        `json:"indexed_at"`
}

func (d Document) docID() string {
	return strconv.FormatInt(d.ID, 10)
}

func toDocument(r domain.Recipe, indexedAt time.Time) Document {
	return Document{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		Slug:                r.Slug,
		PreparationTime:     r.PreparationTime,
		PreparationTimeUnit: r.PreparationTimeUnit,
		Servings:            r.Servings,
		ServingsUnit:        r.ServingsUnit,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		IsPublished:         r.IsPublished,
		Cover:               r.Cover,
		Category:            r.Category,
		Author:              r.Author,
		Tags:                r.Tags,
		IndexedAt:           indexedAt,
	}
}

func (d Document) toDomain() domain.Recipe {
	tags := d.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}
	return domain.Recipe{
		ID:                  d.ID,
		Title:               d.Title,
		Description:         d.Description,
		Slug:                d.Slug,
		PreparationTime:     d.PreparationTime,
		PreparationTimeUnit: d.PreparationTimeUnit,
		Servings:            d.Servings,
		ServingsUnit:        d.ServingsUnit,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
		IsPublished:         d.IsPublished,
		Cover:               d.Cover,
		Category:            d.Category,
		Author:              d.Author,
		Tags:                tags,
	}
}
