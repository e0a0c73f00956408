package domain

import (
	"strings"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
)

const (
	TitleMinLength       = 5
	DescriptionMaxLength = 165
)

// RecipePatch holds the fields a partial update may touch. Nil means untouched.
type RecipePatch struct {
	Title               *string  `json:"title,omitempty"`
	Description         *string  `json:"description,omitempty"`
	PreparationTime     *int     `json:"preparation_time,omitempty"`
	PreparationTimeUnit *string  `json:"preparation_time_unit,omitempty"`
	Servings            *int     `json:"servings,omitempty"`
	ServingsUnit        *string  `json:"servings_unit,omitempty"`
	PreparationSteps    *string  `json:"preparation_steps,omitempty"`
	Cover               *string  `json:"cover,omitempty"`
	IsPublished         *bool    `json:"public,omitempty"`
	CategoryID          *int64   `json:"category_id,omitempty"`
	AuthorID            *int64   `json:"author_id,omitempty"`
	TagIDs              *[]int64 `json:"tag_ids,omitempty"`
}

// Validate checks the fields that are present. It mirrors the rules used when
// a recipe is created, so a patched recipe is always a valid recipe.
func (p RecipePatch) Validate() error {
	fields := map[string]string{}

	var title, description string
	if p.Title != nil {
		title = strings.TrimSpace(*p.Title)
		if len(title) < TitleMinLength {
			fields["title"] = "Must have at least 5 chars."
		}
	}
	if p.Description != nil {
		description = strings.TrimSpace(*p.Description)
		if len(description) > DescriptionMaxLength {
			fields["description"] = "Must have at most 165 chars."
		}
	}
	if p.Title != nil && p.Description != nil && title != "" && title == description {
		fields["description"] = "Cannot be equal to title."
	}
	if p.PreparationTime != nil && *p.PreparationTime <= 0 {
		fields["preparation_time"] = "Must be a positive number."
	}
	if p.Servings != nil && *p.Servings <= 0 {
		fields["servings"] = "Must be a positive number."
	}

	if len(fields) > 0 {
		return apperr.NewFieldValidation("invalid recipe", fields)
	}
	return nil
}

// ValidateNew is Validate plus the fields a new recipe cannot do without.
func (p RecipePatch) ValidateNew() error {
	fields := map[string]string{}
	if p.Title == nil {
		fields["title"] = "This field is required."
	}
	if p.Description == nil {
		fields["description"] = "This field is required."
	}
	if p.PreparationTime == nil {
		fields["preparation_time"] = "This field is required."
	}
	if p.Servings == nil {
		fields["servings"] = "This field is required."
	}
	if p.PreparationSteps == nil {
		fields["preparation_steps"] = "This field is required."
	}
	if len(fields) > 0 {
		return apperr.NewFieldValidation("invalid recipe", fields)
	}
	return p.Validate()
}

// Apply copies the present scalar fields onto r. Category, author and tags
// are resolved by the store, which owns their identity.
func (p RecipePatch) Apply(r *Recipe, now time.Time) {
	if p.Title != nil {
		r.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		r.Description = strings.TrimSpace(*p.Description)
	}
	if p.PreparationTime != nil {
		r.PreparationTime = *p.PreparationTime
	}
	if p.PreparationTimeUnit != nil {
		r.PreparationTimeUnit = *p.PreparationTimeUnit
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.ServingsUnit != nil {
		r.ServingsUnit = *p.ServingsUnit
	}
	if p.PreparationSteps != nil {
		r.PreparationSteps = *p.PreparationSteps
	}
	if p.Cover != nil {
		r.Cover = *p.Cover
	}
	if p.IsPublished != nil {
		r.IsPublished = *p.IsPublished
	}
	r.UpdatedAt = now
}
