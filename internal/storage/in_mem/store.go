package in_mem

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/storage"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
)

type Store struct {
	storageLock sync.RWMutex
	recipes     map[int64]domain.Recipe
	categories  map[int64]domain.Category
	tags        map[int64]domain.Tag
	authors     map[int64]domain.Author
	lastID      int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		recipes:    make(map[int64]domain.Recipe),
		categories: make(map[int64]domain.Category),
		tags:       make(map[int64]domain.Tag),
		authors:    make(map[int64]domain.Author),
		now:        time.Now,
	}
}

func (s *Store) AddCategory(c domain.Category) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.categories[c.ID] = c
}

func (s *Store) AddTag(t domain.Tag) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	if t.Slug == "" {
		t.Slug = domain.Slugify(t.Name)
	}
	s.tags[t.ID] = t
}

func (s *Store) AddAuthor(a domain.Author) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.authors[a.ID] = a
}

func (s *Store) Save(_ context.Context, recipe domain.Recipe) (int64, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	id := s.save(recipe)
	slog.Info("Saving recipe to in-memory storage", "title", recipe.Title, "id", id)
	return id, nil
}

func (s *Store) SaveBulk(_ context.Context, recipes []domain.Recipe) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, r := range recipes {
		s.save(r)
	}
	slog.Info("Saved recipes to in-memory storage", "count", len(recipes))
	return nil
}

func (s *Store) save(r domain.Recipe) int64 {
	if r.ID == 0 {
		s.lastID++
		r.ID = s.lastID
	} else if r.ID > s.lastID {
		s.lastID = r.ID
	}
	now := s.now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	if r.Slug == "" {
		r.Slug = domain.Slugify(r.Title)
	}
	s.resolve(&r)
	s.recipes[r.ID] = r
	return r.ID
}

// resolve replaces ID-only references with the stored entities.
func (s *Store) resolve(r *domain.Recipe) {
	if r.Category != nil {
		if c, ok := s.categories[r.Category.ID]; ok {
			r.Category = &c
		}
	}
	if r.Author != nil {
		if a, ok := s.authors[r.Author.ID]; ok {
			r.Author = &a
		}
	}
	tags := make([]domain.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		if stored, ok := s.tags[t.ID]; ok {
			t = stored
		}
		tags = append(tags, t)
	}
	r.Tags = tags
}

func (s *Store) Update(_ context.Context, id int64, patch domain.RecipePatch) (*domain.Recipe, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	r, ok := s.recipes[id]
	if !ok || !r.IsPublished {
		return nil, storage.ErrNotFound
	}

	patch.Apply(&r, s.now())
	if patch.CategoryID != nil {
		r.Category = &domain.Category{ID: *patch.CategoryID}
	}
	if patch.AuthorID != nil {
		r.Author = &domain.Author{ID: *patch.AuthorID}
	}
	if patch.TagIDs != nil {
		r.Tags = make([]domain.Tag, 0, len(*patch.TagIDs))
		for _, tagID := range *patch.TagIDs {
			r.Tags = append(r.Tags, domain.Tag{ID: tagID})
		}
	}
	s.resolve(&r)
	s.recipes[id] = r

	return &r, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if r, ok := s.recipes[id]; !ok || !r.IsPublished {
		return storage.ErrNotFound
	}
	delete(s.recipes, id)
	return nil
}

func (s *Store) Published(filter domain.Filter) pagination.ResultSet[domain.Recipe] {
	return &resultSet{store: s, filter: filter}
}

func (s *Store) Get(_ context.Context, id int64) (*domain.Recipe, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	r, ok := s.recipes[id]
	if !ok || !r.IsPublished {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

func (s *Store) Category(_ context.Context, id int64) (*domain.Category, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *Store) Author(_ context.Context, id int64) (*domain.Author, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (s *Store) TagBySlug(_ context.Context, slug string) (*domain.Tag, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	for _, t := range s.tags {
		if t.Slug == slug {
			return &t, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) TagByID(_ context.Context, id int64) (*domain.Tag, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	t, ok := s.tags[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

func (s *Store) Healthy(context.Context) bool {
	return true
}

func (s *Store) Close() {}

// matching returns the recipes selected by filter, newest first.
func (s *Store) matching(filter domain.Filter) []domain.Recipe {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var out []domain.Recipe
	for _, r := range s.recipes {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b domain.Recipe) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

type resultSet struct {
	store  *Store
	filter domain.Filter
}

func (rs *resultSet) Count(ctx context.Context) (int, error) {
	return pagination.SliceResultSet[domain.Recipe](rs.store.matching(rs.filter)).Count(ctx)
}

func (rs *resultSet) Slice(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	return pagination.SliceResultSet[domain.Recipe](rs.store.matching(rs.filter)).Slice(ctx, offset, limit)
}
