package in_mem

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML document used to seed a store.
type Fixtures struct {
	Categories []domain.Category `yaml:"categories"`
	Tags       []domain.Tag      `yaml:"tags"`
	Authors    []domain.Author   `yaml:"authors"`
	Recipes    []RecipeFixture   `yaml:"recipes"`
}

type RecipeFixture struct {
	ID                  int64     `yaml:"id"`
	Title               string    `yaml:"title"`
	Description         string    `yaml:"description"`
	Slug                string    `yaml:"slug"`
	PreparationTime     int       `yaml:"preparation_time"`
	PreparationTimeUnit string    `yaml:"preparation_time_unit"`
	Servings            int       `yaml:"servings"`
	ServingsUnit        string    `yaml:"servings_unit"`
	PreparationSteps    string    `yaml:"preparation_steps"`
	IsPublished         *bool     `yaml:"is_published"`
	CreatedAt           time.Time `yaml:"created_at"`
	Cover               string    `yaml:"cover"`
	CategoryID          int64     `yaml:"category_id"`
	AuthorID            int64     `yaml:"author_id"`
	TagIDs              []int64   `yaml:"tag_ids"`
}

func (f RecipeFixture) toDomain() domain.Recipe {
	r := domain.Recipe{
		ID:                  f.ID,
		Title:               f.Title,
		Description:         f.Description,
		Slug:                f.Slug,
		PreparationTime:     f.PreparationTime,
		PreparationTimeUnit: f.PreparationTimeUnit,
		Servings:            f.Servings,
		ServingsUnit:        f.ServingsUnit,
		PreparationSteps:    f.PreparationSteps,
		IsPublished:         f.IsPublished == nil || *f.IsPublished,
		CreatedAt:           f.CreatedAt,
		Cover:               f.Cover,
	}
	if r.PreparationTimeUnit == "" {
		r.PreparationTimeUnit = domain.PreparationTimeUnitMinutes
	}
	if r.ServingsUnit == "" {
		r.ServingsUnit = domain.ServingsUnitPortions
	}
	if f.CategoryID != 0 {
		r.Category = &domain.Category{ID: f.CategoryID}
	}
	if f.AuthorID != 0 {
		r.Author = &domain.Author{ID: f.AuthorID}
	}
	for _, id := range f.TagIDs {
		r.Tags = append(r.Tags, domain.Tag{ID: id})
	}
	return r
}

type FixtureLoader struct {
	reader io.Reader
}

func NewFixtureLoader(reader io.Reader) *FixtureLoader {
	return &FixtureLoader{
		reader: reader,
	}
}

func (fl *FixtureLoader) Load() (*Fixtures, error) {
	decoder := yaml.NewDecoder(fl.reader)
	decoder.KnownFields(true)

	var fixtures Fixtures
	if err := decoder.Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &fixtures, nil
}

// Seed adds every fixture to the store, references first.
func (s *Store) Seed(ctx context.Context, f *Fixtures) error {
	for _, c := range f.Categories {
		s.AddCategory(c)
	}
	for _, t := range f.Tags {
		s.AddTag(t)
	}
	for _, a := range f.Authors {
		s.AddAuthor(a)
	}

	recipes := make([]domain.Recipe, 0, len(f.Recipes))
	for _, r := range f.Recipes {
		recipes = append(recipes, r.toDomain())
	}
	return s.SaveBulk(ctx, recipes)
}

// SeedFile seeds the store from a YAML file on disk.
func (s *Store) SeedFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fixtures file: %w", err)
	}
	defer file.Close()

	fixtures, err := NewFixtureLoader(file).Load()
	if err != nil {
		return err
	}
	return s.Seed(ctx, fixtures)
}
