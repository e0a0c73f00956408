package domain

import (
	"time"
)

const (
	PreparationTimeUnitMinutes = "Minutos"
	ServingsUnitPortions       = "Porções"
)

type Recipe struct {
	ID                     int64     `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Slug                   string    `json:"slug"`
	PreparationTime        int       `json:"preparation_time"`
	PreparationTimeUnit    string    `json:"preparation_time_unit"`
	Servings               int       `json:"servings"`
	ServingsUnit           string    `json:"servings_unit"`
	PreparationSteps       string    `json:"preparation_steps"`
	PreparationStepsIsHTML bool      `json:"preparation_steps_is_html"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	IsPublished            bool      `json:"is_published"`
	Cover                  string    `json:"cover,omitempty"`
	Category               *Category `json:"category,omitempty"`
	Author                 *Author   `json:"author,omitempty"`
	Tags                   []Tag     `json:"tags"`
}

// Preparation renders the preparation time the way list pages show it.
func (r Recipe) Preparation() string {
	return formatQuantity(r.PreparationTime, r.PreparationTimeUnit)
}

// HasTag reports whether the recipe carries a tag with the given slug.
func (r Recipe) HasTag(slug string) bool {
	for _, t := range r.Tags {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

type Category struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Tag struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

type Author struct {
	ID        int64  `json:"id" yaml:"id"`
	Username  string `json:"username" yaml:"username"`
	FirstName string `json:"first_name,omitempty" yaml:"first_name"`
	LastName  string `json:"last_name,omitempty" yaml:"last_name"`
}

// FullName is "First Last (username)", or just the username when no name is known.
func (a Author) FullName() string {
	name := a.FirstName
	if a.LastName != "" {
		if name != "" {
			name += " "
		}
		name += a.LastName
	}
	if name == "" {
		return a.Username
	}
	return name + " (" + a.Username + ")"
}
