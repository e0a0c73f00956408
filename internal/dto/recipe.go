package dto

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
)

// Recipe is the API v2 representation of a recipe.
type Recipe struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Public      bool     `json:"public"`
	Preparation string   `json:"preparation"`
	Category    string   `json:"category"`
	Author      *int64   `json:"author"`
	Tags        []int64  `json:"tags"`
	TagObjects  []Tag    `json:"tag_objects"`
	TagLinks    []string `json:"tag_links"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RecipeV1 is the API v1 detail representation. Publication flags are not exposed.
type RecipeV1 struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Slug                string  `json:"slug"`
	PreparationTime     int     `json:"preparation_time"`
	PreparationTimeUnit string  `json:"preparation_time_unit"`
	Servings            int     `json:"servings"`
	ServingsUnit        string  `json:"servings_unit"`
	PreparationSteps    string  `json:"preparation_steps"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
	Cover               string  `json:"cover"`
	Category            *int64  `json:"category"`
	Author              *int64  `json:"author"`
	Tags                []int64 `json:"tags"`
}

// PageEnvelope wraps one API page with the total count and the neighbouring page links.
type PageEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func NewTag(t domain.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

// NewRecipe maps a domain recipe to its API form. baseURL is the scheme and
// host tag links are resolved against.
func NewRecipe(r domain.Recipe, baseURL string) Recipe {
	out := Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Public:      r.IsPublished,
		Preparation: r.Preparation(),
		Tags:        make([]int64, 0, len(r.Tags)),
		TagObjects:  make([]Tag, 0, len(r.Tags)),
		TagLinks:    make([]string, 0, len(r.Tags)),
	}
	if r.Category != nil {
		out.Category = r.Category.Name
	}
	if r.Author != nil {
		id := r.Author.ID
		out.Author = &id
	}
	for _, t := range r.Tags {
		out.Tags = append(out.Tags, t.ID)
		out.TagObjects = append(out.TagObjects, NewTag(t))
		out.TagLinks = append(out.TagLinks, TagLink(baseURL, t.ID))
	}
	return out
}

// NewRecipeV1 maps a domain recipe to its v1 form. The cover is resolved
// against baseURL; a recipe without one has an empty cover.
func NewRecipeV1(r domain.Recipe, baseURL string) RecipeV1 {
	out := RecipeV1{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		Slug:                r.Slug,
		PreparationTime:     r.PreparationTime,
		PreparationTimeUnit: r.PreparationTimeUnit,
		Servings:            r.Servings,
		ServingsUnit:        r.ServingsUnit,
		PreparationSteps:    r.PreparationSteps,
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           r.UpdatedAt.Format(time.RFC3339),
		Cover:               CoverLink(baseURL, r.Cover),
		Tags:                make([]int64, 0, len(r.Tags)),
	}
	if r.Category != nil {
		id := r.Category.ID
		out.Category = &id
	}
	if r.Author != nil {
		id := r.Author.ID
		out.Author = &id
	}
	for _, t := range r.Tags {
		out.Tags = append(out.Tags, t.ID)
	}
	return out
}

// CoverLink makes a stored cover path absolute. Covers that already are
// absolute URLs are returned unchanged.
func CoverLink(baseURL, cover string) string {
	if cover == "" {
		return ""
	}
	if u, err := url.Parse(cover); err == nil && u.IsAbs() {
		return cover
	}
	return baseURL + "/" + strings.TrimPrefix(cover, "/")
}

func TagLink(baseURL string, id int64) string {
	return fmt.Sprintf("%s/recipes/api/v2/tag/%d/", baseURL, id)
}

// NewRecipePage builds the API envelope for page. u is the URL the page was
// requested with; next and previous keep its other query parameters.
func NewRecipePage(page *pagination.Page[domain.Recipe], u url.URL, baseURL string) PageEnvelope[Recipe] {
	results := make([]Recipe, 0, len(page.Items))
	for _, r := range page.Items {
		results = append(results, NewRecipe(r, baseURL))
	}
	return PageEnvelope[Recipe]{
		Count:    page.Count,
		Next:     pagination.NextLink(u, page),
		Previous: pagination.PreviousLink(u, page),
		Results:  results,
	}
}
