package recipes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/storage"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
)

// ListView is what a recipe listing page renders: the current page, the
// page links around it and the page specific labels.
type ListView struct {
	Recipes            *pagination.Page[domain.Recipe] `json:"recipes"`
	PaginationRange    *pagination.Range               `json:"pagination_range"`
	PageTitle          string                          `json:"page_title,omitempty"`
	SearchTerm         string                          `json:"search_term,omitempty"`
	AdditionalURLQuery string                          `json:"additional_url_query,omitempty"`
}

type Service struct {
	reader   storage.Reader
	storer   storage.Storer
	searcher storage.Searcher
	indexer  storage.Indexer
	cfg      Config
}

type Option func(*Service)

// WithIndexer keeps a secondary search index in sync with every write.
func WithIndexer(indexer storage.Indexer) Option {
	return func(s *Service) {
		s.indexer = indexer
	}
}

func NewService(store storage.Store, searcher storage.Searcher, cfg Config, opts ...Option) *Service {
	if searcher == nil {
		searcher = storage.NewReaderSearcher(store)
	}
	s := &Service{
		reader:   store,
		storer:   store,
		searcher: searcher,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) list(ctx context.Context, rs pagination.ResultSet[domain.Recipe], req pagination.Request) (*ListView, error) {
	page, rng, err := pagination.Paginate(ctx, rs, req)
	if err != nil {
		return nil, err
	}
	return &ListView{Recipes: page, PaginationRange: rng}, nil
}

// Home lists every published recipe.
func (s *Service) Home(ctx context.Context, rawPage string) (*ListView, error) {
	return s.list(ctx, s.reader.Published(domain.Filter{}), s.cfg.pageRequest(rawPage))
}

// Category lists a category's recipes. A category without published recipes
// is reported as not found, the same as an unknown one.
func (s *Service) Category(ctx context.Context, categoryID int64, rawPage string) (*ListView, error) {
	view, err := s.list(ctx, s.reader.Published(domain.Filter{CategoryID: categoryID}), s.cfg.pageRequest(rawPage))
	if err != nil {
		return nil, err
	}
	// the set can shrink between Count and Slice
	if view.Recipes.Count == 0 || len(view.Recipes.Items) == 0 {
		return nil, apperr.NewNotFound("category", categoryID)
	}

	name := ""
	if first := view.Recipes.Items[0]; first.Category != nil {
		name = first.Category.Name
	}
	view.PageTitle = fmt.Sprintf("%s - Category | ", name)
	return view, nil
}

// Search lists recipes whose title or description contains term.
// An empty term is not found; a term matching nothing is an empty page.
func (s *Service) Search(ctx context.Context, term, rawPage string) (*ListView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.NewNotFound("search term", nil)
	}

	view, err := s.list(ctx, s.searcher.Search(term), s.cfg.pageRequest(rawPage))
	if err != nil {
		return nil, err
	}
	view.PageTitle = fmt.Sprintf("Search for \"%s\" |", term)
	view.SearchTerm = term
	view.AdditionalURLQuery = "&q=" + url.QueryEscape(term)
	return view, nil
}

// Tag lists the recipes carrying the tag with the given slug. Unknown tags
// render an empty listing instead of failing.
func (s *Service) Tag(ctx context.Context, slug, rawPage string) (*ListView, error) {
	view, err := s.list(ctx, s.reader.Published(domain.Filter{TagSlug: slug}), s.cfg.pageRequest(rawPage))
	if err != nil {
		return nil, err
	}

	title := "No recipes found"
	tag, err := s.reader.TagBySlug(ctx, slug)
	switch {
	case err == nil:
		title = tag.Name
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}
	view.PageTitle = title + " - Tag |"
	return view, nil
}

// Detail returns a published recipe.
func (s *Service) Detail(ctx context.Context, id int64) (*domain.Recipe, error) {
	r, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "recipe", id)
	}
	return r, nil
}

// APIList pages through published recipes with the API page size.
func (s *Service) APIList(ctx context.Context, rawPage string) (*pagination.Page[domain.Recipe], error) {
	page, _, err := pagination.Paginate(ctx, s.reader.Published(domain.Filter{}), s.cfg.apiRequest(rawPage))
	return page, err
}

// APITag returns any tag by id, whether or not recipes use it.
func (s *Service) APITag(ctx context.Context, id int64) (*domain.Tag, error) {
	t, err := s.reader.TagByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "tag", id)
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, input domain.RecipePatch) (*domain.Recipe, error) {
	if err := input.ValidateNew(); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	r := domain.Recipe{
		PreparationTimeUnit: domain.PreparationTimeUnitMinutes,
		ServingsUnit:        domain.ServingsUnitPortions,
		IsPublished:         true,
	}
	input.Apply(&r, time.Time{})
	r.Slug = domain.Slugify(r.Title)
	if input.CategoryID != nil {
		r.Category = &domain.Category{ID: *input.CategoryID}
	}
	if input.AuthorID != nil {
		r.Author = &domain.Author{ID: *input.AuthorID}
	}
	if input.TagIDs != nil {
		for _, id := range *input.TagIDs {
			r.Tags = append(r.Tags, domain.Tag{ID: id})
		}
	}

	id, err := s.storer.Save(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	slog.Info("Recipe created", "id", id, "title", r.Title)

	created, err := s.reader.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		// saved unpublished
		r.ID = id
		return &r, nil
	}
	if err != nil {
		return nil, err
	}
	s.index(ctx, created)
	return created, nil
}

func (s *Service) Patch(ctx context.Context, id int64, patch domain.RecipePatch) (*domain.Recipe, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, patch); err != nil {
		return nil, err
	}

	r, err := s.storer.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, "recipe", id)
	}
	slog.Info("Recipe updated", "id", id)

	s.index(ctx, r)
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.storer.Delete(ctx, id); err != nil {
		return notFound(err, "recipe", id)
	}
	slog.Info("Recipe deleted", "id", id)

	if s.indexer != nil {
		if err := s.indexer.Delete(ctx, id); err != nil {
			slog.Warn("Failed to remove recipe from search index", "id", id, "error", err)
		}
	}
	return nil
}

// validateReferences checks that the category, author and tags a write
// points at exist.
func (s *Service) validateReferences(ctx context.Context, p domain.RecipePatch) error {
	fields := map[string]string{}

	if p.CategoryID != nil {
		if _, err := s.reader.Category(ctx, *p.CategoryID); err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			fields["category_id"] = fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *p.CategoryID)
		}
	}
	if p.AuthorID != nil {
		if _, err := s.reader.Author(ctx, *p.AuthorID); err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			fields["author_id"] = fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *p.AuthorID)
		}
	}
	if p.TagIDs != nil {
		for _, id := range *p.TagIDs {
			if _, err := s.reader.TagByID(ctx, id); err != nil {
				if !errors.Is(err, storage.ErrNotFound) {
					return err
				}
				fields["tag_ids"] = fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
				break
			}
		}
	}

	if len(fields) > 0 {
		return apperr.NewFieldValidation("invalid recipe", fields)
	}
	return nil
}

// index pushes a written recipe to the search index. The primary store is
// the source of truth, so a failure here is logged and not returned.
func (s *Service) index(ctx context.Context, r *domain.Recipe) {
	if s.indexer == nil {
		return
	}

	var err error
	if r.IsPublished {
		err = s.indexer.SaveBulk(ctx, []domain.Recipe{*r})
	} else {
		err = s.indexer.Delete(ctx, r.ID)
	}
	if err != nil {
		slog.Warn("Failed to sync recipe with search index", "id", r.ID, "error", err)
	}
}

func notFound(err error, resource string, key any) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound(resource, key)
	}
	return err
}
