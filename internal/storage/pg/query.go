package pg

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/recipes/internal/domain"
)

const recipeColumns = `
	r.id, r.title, r.description, r.slug,
	r.preparation_time, r.preparation_time_unit, r.servings, r.servings_unit,
	r.preparation_steps, r.preparation_steps_is_html,
	r.created_at, r.updated_at, r.is_published, r.cover,
	c.id, c.name, a.id, a.username, a.first_name, a.last_name`

const recipeFrom = `
	FROM recipes r
	LEFT JOIN categories c ON c.id = r.category_id
	LEFT JOIN authors a ON a.id = r.author_id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildWhereClause renders the filter as SQL conditions with positional
// arguments starting at $1. Only published recipes are ever selected.
func buildWhereClause(f domain.Filter) (string, []any) {
	conds := []string{"r.is_published = TRUE"}
	var args []any

	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("r.category_id = $%d", len(args)))
	}
	if f.TagSlug != "" {
		args = append(args, f.TagSlug)
		conds = append(conds, fmt.Sprintf(`EXISTS (
		SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = r.id AND t.slug = $%d)`, len(args)))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		args = append(args, "%"+likeEscaper.Replace(term)+"%")
		conds = append(conds, fmt.Sprintf("(r.title ILIKE $%d OR r.description ILIKE $%d)", len(args), len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// buildSetClause renders the present patch fields as an UPDATE SET list.
// Arguments start at $2; $1 is reserved for the recipe id.
func buildSetClause(p domain.RecipePatch) (string, []any) {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
	}

	if p.Title != nil {
		add("title", strings.TrimSpace(*p.Title))
	}
	if p.Description != nil {
		add("description", strings.TrimSpace(*p.Description))
	}
	if p.PreparationTime != nil {
		add("preparation_time", *p.PreparationTime)
	}
	if p.PreparationTimeUnit != nil {
		add("preparation_time_unit", *p.PreparationTimeUnit)
	}
	if p.Servings != nil {
		add("servings", *p.Servings)
	}
	if p.ServingsUnit != nil {
		add("servings_unit", *p.ServingsUnit)
	}
	if p.PreparationSteps != nil {
		add("preparation_steps", *p.PreparationSteps)
	}
	if p.Cover != nil {
		add("cover", *p.Cover)
	}
	if p.IsPublished != nil {
		add("is_published", *p.IsPublished)
	}
	if p.CategoryID != nil {
		add("category_id", *p.CategoryID)
	}
	if p.AuthorID != nil {
		add("author_id", *p.AuthorID)
	}
	sets = append(sets, "updated_at = NOW()")

	return strings.Join(sets, ", "), args
}
