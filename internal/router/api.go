package router

import (
	"net/http"
	"net/url"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/dto"
	"github.com/DjordjeVuckovic/recipes/internal/recipes"
	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type APIRouter struct {
	e   *echo.Echo
	svc *recipes.Service
}

func NewAPIRouter(e *echo.Echo, svc *recipes.Service) *APIRouter {
	return &APIRouter{
		e:   e,
		svc: svc,
	}
}

func (r *APIRouter) Bind() {
	v1 := r.e.Group("/recipes/api/v1")
	v1.GET("/", r.v1ListHandler)
	v1.GET("/:id/", r.v1DetailHandler)

	v2 := r.e.Group("/recipes/api/v2")
	v2.GET("/", r.listHandler)
	v2.POST("/", r.createHandler)
	v2.GET("/tag/:id/", r.tagHandler)
	v2.GET("/:id/", r.detailHandler)
	v2.PATCH("/:id/", r.patchHandler)
	v2.DELETE("/:id/", r.deleteHandler)
}

// v1ListHandler godoc
// @Summary Current page of recipes
// @Description Returns the recipes of one listing page as a plain array
// @Tags api-v1
// @Produce json
// @Param page query string false "Page number"
// @Success 200 {array} domain.Recipe
// @Router /recipes/api/v1/ [get]
func (r *APIRouter) v1ListHandler(c echo.Context) error {
	view, err := r.svc.Home(c.Request().Context(), c.QueryParam(pagination.PageParam))
	if err != nil {
		return err
	}
	items := view.Recipes.Items
	if items == nil {
		items = []domain.Recipe{}
	}
	return c.JSON(http.StatusOK, items)
}

// v1DetailHandler godoc
// @Summary Recipe detail
// @Tags api-v1
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.RecipeV1
// @Failure 404 {object} map[string]string
// @Router /recipes/api/v1/{id}/ [get]
func (r *APIRouter) v1DetailHandler(c echo.Context) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return err
	}

	recipe, err := r.svc.Detail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewRecipeV1(*recipe, baseURL(c)))
}

// listHandler godoc
// @Summary List recipes
// @Description Published recipes, newest first, in pages of the API page size
// @Tags api-v2
// @Produce json
// @Param page query string false "Page number"
// @Success 200 {object} dto.PageEnvelope[dto.Recipe]
// @Router /recipes/api/v2/ [get]
func (r *APIRouter) listHandler(c echo.Context) error {
	page, err := r.svc.APIList(c.Request().Context(), c.QueryParam(pagination.PageParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewRecipePage(page, requestURL(c), baseURL(c)))
}

// createHandler godoc
// @Summary Create a recipe
// @Tags api-v2
// @Accept json
// @Produce json
// @Param recipe body domain.RecipePatch true "Recipe"
// @Success 201 {object} dto.Recipe
// @Failure 400 {object} map[string]any
// @Router /recipes/api/v2/ [post]
func (r *APIRouter) createHandler(c echo.Context) error {
	var input domain.RecipePatch
	if err := c.Bind(&input); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	recipe, err := r.svc.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.NewRecipe(*recipe, baseURL(c)))
}

// detailHandler godoc
// @Summary Get a recipe
// @Tags api-v2
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.Recipe
// @Failure 404 {object} map[string]string
// @Router /recipes/api/v2/{id}/ [get]
func (r *APIRouter) detailHandler(c echo.Context) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return err
	}

	recipe, err := r.svc.Detail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewRecipe(*recipe, baseURL(c)))
}

// patchHandler godoc
// @Summary Partially update a recipe
// @Tags api-v2
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body domain.RecipePatch true "Fields to change"
// @Success 200 {object} dto.Recipe
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /recipes/api/v2/{id}/ [patch]
func (r *APIRouter) patchHandler(c echo.Context) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return err
	}

	var patch domain.RecipePatch
	if err := (&echo.DefaultBinder{}).BindBody(c, &patch); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	recipe, err := r.svc.Patch(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewRecipe(*recipe, baseURL(c)))
}

// deleteHandler godoc
// @Summary Delete a recipe
// @Tags api-v2
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /recipes/api/v2/{id}/ [delete]
func (r *APIRouter) deleteHandler(c echo.Context) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return err
	}

	if err := r.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// tagHandler godoc
// @Summary Get a tag
// @Tags api-v2
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} dto.Tag
// @Failure 404 {object} map[string]string
// @Router /recipes/api/v2/tag/{id}/ [get]
func (r *APIRouter) tagHandler(c echo.Context) error {
	id, err := pathID(c, "id", "tag")
	if err != nil {
		return err
	}

	tag, err := r.svc.APITag(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewTag(*tag))
}

func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// requestURL is the absolute URL of the current request.
func requestURL(c echo.Context) url.URL {
	return url.URL{
		Scheme:   c.Scheme(),
		Host:     c.Request().Host,
		Path:     c.Request().URL.Path,
		RawQuery: c.Request().URL.RawQuery,
	}
}
