package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
	"github.com/DjordjeVuckovic/recipes/internal/recipes"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// RecipeRouter serves the listing and detail pages. Pages are returned as
// their JSON view model.
type RecipeRouter struct {
	e   *echo.Echo
	svc *recipes.Service
}

func NewRecipeRouter(e *echo.Echo, svc *recipes.Service) *RecipeRouter {
	return &RecipeRouter{
		e:   e,
		svc: svc,
	}
}

func (r *RecipeRouter) Bind() {
	r.e.GET("/", r.homeHandler)
	r.e.GET("/recipes/search/", r.searchHandler)
	r.e.GET("/recipes/category/:category_id/", r.categoryHandler)
	r.e.GET("/recipes/tags/:slug/", r.tagHandler)
	r.e.GET("/recipes/:id/", r.detailHandler)
}

// homeHandler godoc
// @Summary Published recipes
// @Description Lists published recipes, newest first, with the page links around the current page
// @Tags pages
// @Produce json
// @Param page query string false "Page number; invalid values fall back to 1"
// @Success 200 {object} recipes.ListView
// @Failure 500 {object} map[string]string
// @Router / [get]
func (r *RecipeRouter) homeHandler(c echo.Context) error {
	view, err := r.svc.Home(c.Request().Context(), c.QueryParam(pagination.PageParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// searchHandler godoc
// @Summary Search recipes
// @Description Lists published recipes whose title or description contains q
// @Tags pages
// @Produce json
// @Param q query string true "Search term"
// @Param page query string false "Page number"
// @Success 200 {object} recipes.ListView
// @Failure 404 {object} map[string]string
// @Router /recipes/search/ [get]
func (r *RecipeRouter) searchHandler(c echo.Context) error {
	view, err := r.svc.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam(pagination.PageParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// categoryHandler godoc
// @Summary Recipes of a category
// @Tags pages
// @Produce json
// @Param category_id path int true "Category ID"
// @Param page query string false "Page number"
// @Success 200 {object} recipes.ListView
// @Failure 404 {object} map[string]string
// @Router /recipes/category/{category_id}/ [get]
func (r *RecipeRouter) categoryHandler(c echo.Context) error {
	id, err := pathID(c, "category_id", "category")
	if err != nil {
		return err
	}

	view, err := r.svc.Category(c.Request().Context(), id, c.QueryParam(pagination.PageParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// tagHandler godoc
// @Summary Recipes with a tag
// @Tags pages
// @Produce json
// @Param slug path string true "Tag slug"
// @Param page query string false "Page number"
// @Success 200 {object} recipes.ListView
// @Router /recipes/tags/{slug}/ [get]
func (r *RecipeRouter) tagHandler(c echo.Context) error {
	view, err := r.svc.Tag(c.Request().Context(), c.Param("slug"), c.QueryParam(pagination.PageParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// detailHandler godoc
// @Summary Recipe detail
// @Tags pages
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} map[string]string
// @Router /recipes/{id}/ [get]
func (r *RecipeRouter) detailHandler(c echo.Context) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return err
	}

	recipe, err := r.svc.Detail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe)
}

// pathID parses a numeric path parameter. A non-numeric one names nothing
// that could exist, so it is a not found.
func pathID(c echo.Context, param, resource string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NewNotFound(resource, raw)
	}
	return id, nil
}
