package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/storage"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) (*Store, error) {
	return &Store{pool: pool, db: pool.conn}, nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	if s.pool == nil {
		return false
	}
	return s.pool.Ping(ctx) == nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Published(filter domain.Filter) pagination.ResultSet[domain.Recipe] {
	return &resultSet{store: s, filter: filter}
}

func (s *Store) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.get(ctx, id, true)
}

func (s *Store) get(ctx context.Context, id int64, publishedOnly bool) (*domain.Recipe, error) {
	sql := "SELECT " + recipeColumns + recipeFrom + " WHERE r.id = $1"
	if publishedOnly {
		sql += " AND r.is_published = TRUE"
	}

	recipes, err := s.queryRecipes(ctx, sql, id)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, storage.ErrNotFound
	}
	return &recipes[0], nil
}

func (s *Store) Category(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := s.db.QueryRow(ctx, "SELECT id, name FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return &c, nil
}

func (s *Store) Author(ctx context.Context, id int64) (*domain.Author, error) {
	var a domain.Author
	err := s.db.QueryRow(ctx, "SELECT id, username, first_name, last_name FROM authors WHERE id = $1", id).
		Scan(&a.ID, &a.Username, &a.FirstName, &a.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch author: %w", err)
	}
	return &a, nil
}

func (s *Store) TagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	return s.queryTag(ctx, "SELECT id, name, slug FROM tags WHERE slug = $1 ORDER BY id LIMIT 1", slug)
}

func (s *Store) TagByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.queryTag(ctx, "SELECT id, name, slug FROM tags WHERE id = $1", id)
}

func (s *Store) queryTag(ctx context.Context, sql string, arg any) (*domain.Tag, error) {
	var t domain.Tag
	err := s.db.QueryRow(ctx, sql, arg).Scan(&t.ID, &t.Name, &t.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tag: %w", err)
	}
	return &t, nil
}

func (s *Store) Save(ctx context.Context, recipe domain.Recipe) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var err error
		id, err = insertRecipe(ctx, tx, recipe)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) SaveBulk(ctx context.Context, recipes []domain.Recipe) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		for i, r := range recipes {
			if _, err := insertRecipe(ctx, tx, r); err != nil {
				return fmt.Errorf("recipe %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to bulk insert recipes: %w", err)
	}
	slog.Info("Saved recipes to PostgreSQL", "count", len(recipes))
	return nil
}

func insertRecipe(ctx context.Context, tx pgx.Tx, r domain.Recipe) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}
	if r.Slug == "" {
		r.Slug = domain.Slugify(r.Title)
	}
	var categoryID, authorID *int64
	if r.Category != nil {
		categoryID = &r.Category.ID
	}
	if r.Author != nil {
		authorID = &r.Author.ID
	}

	cmd := `
		INSERT INTO recipes (
			title, description, slug, preparation_time, preparation_time_unit,
			servings, servings_unit, preparation_steps, preparation_steps_is_html,
			created_at, updated_at, is_published, cover, category_id, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, cmd,
		r.Title,
		r.Description,
		r.Slug,
		r.PreparationTime,
		r.PreparationTimeUnit,
		r.Servings,
		r.ServingsUnit,
		r.PreparationSteps,
		r.PreparationStepsIsHTML,
		r.CreatedAt,
		r.UpdatedAt,
		r.IsPublished,
		r.Cover,
		categoryID,
		authorID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	tagIDs := make([]int64, 0, len(r.Tags))
	for _, t := range r.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	if err := replaceTags(ctx, tx, id, tagIDs); err != nil {
		return 0, err
	}
	return id, nil
}

func replaceTags(ctx context.Context, tx pgx.Tx, recipeID int64, tagIDs []int64) error {
	if _, err := tx.Exec(ctx, "DELETE FROM recipe_tags WHERE recipe_id = $1", recipeID); err != nil {
		return fmt.Errorf("failed to clear recipe tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([][]any, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = []any{recipeID, tagID}
	}
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"recipe_tags"},
		[]string{"recipe_id", "tag_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert recipe tags: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, id int64, patch domain.RecipePatch) (*domain.Recipe, error) {
	set, args := buildSetClause(patch)
	cmd := fmt.Sprintf("UPDATE recipes SET %s WHERE id = $1 AND is_published = TRUE", set)

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, cmd, append([]any{id}, args...)...)
		if err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		if patch.TagIDs != nil {
			return replaceTags(ctx, tx, id, *patch.TagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// the patch may have unpublished it
	return s.get(ctx, id, false)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM recipes WHERE id = $1 AND is_published = TRUE", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) queryRecipes(ctx context.Context, sql string, args ...any) ([]domain.Recipe, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute recipe query: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if err := s.attachTags(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func scanRecipe(rows pgx.Rows) (domain.Recipe, error) {
	var r domain.Recipe
	var categoryID, authorID *int64
	var categoryName, username, firstName, lastName *string

	if err := rows.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Slug,
		&r.PreparationTime,
		&r.PreparationTimeUnit,
		&r.Servings,
		&r.ServingsUnit,
		&r.PreparationSteps,
		&r.PreparationStepsIsHTML,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.IsPublished,
		&r.Cover,
		&categoryID,
		&categoryName,
		&authorID,
		&username,
		&firstName,
		&lastName,
	); err != nil {
		return r, fmt.Errorf("failed to scan recipe: %w", err)
	}

	if categoryID != nil {
		r.Category = &domain.Category{ID: *categoryID, Name: deref(categoryName)}
	}
	if authorID != nil {
		r.Author = &domain.Author{
			ID:        *authorID,
			Username:  deref(username),
			FirstName: deref(firstName),
			LastName:  deref(lastName),
		}
	}
	r.Tags = []domain.Tag{}
	return r, nil
}

func (s *Store) attachTags(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]int64, len(recipes))
	index := make(map[int64]int, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
		index[r.ID] = i
	}

	rows, err := s.db.Query(ctx, `
		SELECT rt.recipe_id, t.id, t.name, t.slug
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ANY($1)
		ORDER BY t.id
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch recipe tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipeID int64
		var t domain.Tag
		if err := rows.Scan(&recipeID, &t.ID, &t.Name, &t.Slug); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		i := index[recipeID]
		recipes[i].Tags = append(recipes[i].Tags, t)
	}
	return rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type resultSet struct {
	store  *Store
	filter domain.Filter
}

func (rs *resultSet) Count(ctx context.Context) (int, error) {
	where, args := buildWhereClause(rs.filter)
	sql := "SELECT COUNT(*) FROM recipes r WHERE " + where

	var count int
	if err := rs.store.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

func (rs *resultSet) Slice(ctx context.Context, offset, limit int) ([]domain.Recipe, error) {
	where, args := buildWhereClause(rs.filter)
	n := len(args)
	sql := fmt.Sprintf("SELECT %s %s WHERE %s ORDER BY r.id DESC LIMIT $%d OFFSET $%d",
		recipeColumns, recipeFrom, where, n+1, n+2)

	slog.Debug("PostgreSQL recipe page query", "where", where, "offset", offset, "limit", limit)

	recipes, err := rs.store.queryRecipes(ctx, sql, append(args, limit, offset)...)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}
