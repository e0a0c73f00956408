package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
	"github.com/DjordjeVuckovic/recipes/internal/domain"
	"github.com/DjordjeVuckovic/recipes/internal/dto"
	"github.com/DjordjeVuckovic/recipes/internal/recipes"
	"github.com/DjordjeVuckovic/recipes/internal/storage/in_mem"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEcho serves 12 published recipes, all in category 1 and tagged
// "quick", with 4 per page and 5 per API page.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	store := in_mem.NewStore()
	store.AddCategory(domain.Category{ID: 1, Name: "Desserts"})
	store.AddTag(domain.Tag{ID: 1, Name: "Quick"})
	store.AddAuthor(domain.Author{ID: 1, Username: "chef"})

	var rs []domain.Recipe
	for i := 1; i <= 12; i++ {
		rs = append(rs, domain.Recipe{
			Title:               fmt.Sprintf("Recipe title %d", i),
			Description:         fmt.Sprintf("Description %d", i),
			PreparationTime:     10,
			PreparationTimeUnit: domain.PreparationTimeUnitMinutes,
			IsPublished:         true,
			Category:            &domain.Category{ID: 1},
			Author:              &domain.Author{ID: 1},
			Tags:                []domain.Tag{{ID: 1}},
		})
	}
	require.NoError(t, store.SaveBulk(context.Background(), rs))

	svc := recipes.NewService(store, nil, recipes.Config{PageSize: 4, APIPageSize: 5, Window: 4})

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewRecipeRouter(e, svc).Bind()
	NewAPIRouter(e, svc).Bind()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type listViewBody struct {
	Recipes struct {
		Items []domain.Recipe `json:"items"`
		Page  int             `json:"page"`
		Count int             `json:"count"`
	} `json:"recipes"`
	PaginationRange struct {
		PageRange   []int `json:"page_range"`
		CurrentPage int   `json:"current_page"`
		TotalPages  int   `json:"total_pages"`
		FirstPage   *int  `json:"first_page"`
		LastPage    *int  `json:"last_page"`
	} `json:"pagination_range"`
	PageTitle          string `json:"page_title"`
	SearchTerm         string `json:"search_term"`
	AdditionalURLQuery string `json:"additional_url_query"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRecipeRouter_Home(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantRange []int
		wantFirst bool
	}{
		{name: "no page", target: "/", wantPage: 1, wantRange: []int{1, 2, 3}},
		{name: "page 3", target: "/?page=3", wantPage: 3, wantRange: []int{1, 2, 3}},
		{name: "negative page", target: "/?page=-2", wantPage: 1, wantRange: []int{1, 2, 3}},
		{name: "float page", target: "/?page=1.5", wantPage: 1, wantRange: []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			body := decode[listViewBody](t, rec)
			assert.Equal(t, tt.wantPage, body.PaginationRange.CurrentPage)
			assert.Equal(t, tt.wantRange, body.PaginationRange.PageRange)
			assert.Equal(t, 3, body.PaginationRange.TotalPages)
			assert.Nil(t, body.PaginationRange.FirstPage)
			assert.Nil(t, body.PaginationRange.LastPage)
			assert.Len(t, body.Recipes.Items, 4)
			assert.Equal(t, 12, body.Recipes.Count)
		})
	}
}

func TestRecipeRouter_Search(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/recipes/search/?q=title+1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[listViewBody](t, rec)
	// title 1, 10, 11, 12
	assert.Equal(t, 4, body.Recipes.Count)
	assert.Equal(t, "title 1", body.SearchTerm)
	assert.Equal(t, "&q=title+1", body.AdditionalURLQuery)
	assert.Equal(t, `Search for "title 1" |`, body.PageTitle)

	rec = do(e, http.MethodGet, "/recipes/search/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecipeRouter_Category(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/recipes/category/1/?page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[listViewBody](t, rec)
	assert.Equal(t, "Desserts - Category | ", body.PageTitle)
	assert.Equal(t, 2, body.PaginationRange.CurrentPage)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/recipes/category/2/", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/recipes/category/abc/", "").Code)
}

func TestRecipeRouter_TagAndDetail(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/recipes/tags/quick/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Quick - Tag |", decode[listViewBody](t, rec).PageTitle)

	rec = do(e, http.MethodGet, "/recipes/tags/nope/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No recipes found - Tag |", decode[listViewBody](t, rec).PageTitle)

	rec = do(e, http.MethodGet, "/recipes/5/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Recipe title 5", decode[domain.Recipe](t, rec).Title)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/recipes/500/", "").Code)
}

func TestAPIRouter_V1(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/recipes/api/v1/?page=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]domain.Recipe](t, rec)
	require.Len(t, list, 4)
	assert.Equal(t, int64(4), list[0].ID)

	rec = do(e, http.MethodGet, "/recipes/api/v1/2/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "is_published")
	detail := decode[dto.RecipeV1](t, rec)
	assert.Equal(t, int64(2), detail.ID)
	assert.Equal(t, []int64{1}, detail.Tags)
}

func TestAPIRouter_List(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/recipes/api/v2/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[dto.PageEnvelope[dto.Recipe]](t, rec)
	assert.Equal(t, 12, page.Count)
	assert.Len(t, page.Results, 5)
	require.NotNil(t, page.Next)
	assert.Equal(t, "http://example.com/recipes/api/v2/?page=2", *page.Next)
	assert.Nil(t, page.Previous)

	first := page.Results[0]
	assert.Equal(t, int64(12), first.ID)
	assert.Equal(t, "Desserts", first.Category)
	assert.Equal(t, "10 Minutos", first.Preparation)
	assert.Equal(t, []string{"http://example.com/recipes/api/v2/tag/1/"}, first.TagLinks)

	rec = do(e, http.MethodGet, "/recipes/api/v2/?page=2", "")
	page = decode[dto.PageEnvelope[dto.Recipe]](t, rec)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://example.com/recipes/api/v2/", *page.Previous)

	rec = do(e, http.MethodGet, "/recipes/api/v2/?page=3", "")
	page = decode[dto.PageEnvelope[dto.Recipe]](t, rec)
	assert.Len(t, page.Results, 2)
	assert.Nil(t, page.Next)
}

func TestAPIRouter_CRUD(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/recipes/api/v2/", `{
		"title": "Banana Bread",
		"description": "Moist and easy",
		"preparation_time": 60,
		"servings": 8,
		"preparation_steps": "Mash, mix and bake.",
		"category_id": 1,
		"tag_ids": [1]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.Recipe](t, rec)
	assert.Equal(t, int64(13), created.ID)
	assert.True(t, created.Public)

	rec = do(e, http.MethodPatch, "/recipes/api/v2/13/", `{"title": "Banana Loaf"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Banana Loaf", decode[dto.Recipe](t, rec).Title)

	rec = do(e, http.MethodPatch, "/recipes/api/v2/13/", `{"title": "Pie"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must have at least 5 chars.")

	rec = do(e, http.MethodDelete, "/recipes/api/v2/13/", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/recipes/api/v2/13/", "").Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/recipes/api/v2/13/", "").Code)
}

func TestAPIRouter_CreateInvalid(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/recipes/api/v2/", `{"title": "Banana Bread"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[map[string]any](t, rec)
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "description")

	rec = do(e, http.MethodPost, "/recipes/api/v2/", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/recipes/api/v2/", `{
		"title": "Banana Bread",
		"description": "Moist and easy",
		"preparation_time": 60,
		"servings": 8,
		"preparation_steps": "Mash, mix and bake.",
		"author_id": 999
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"author_id":"Invalid pk \"999\" - object does not exist."`)
}

func TestAPIRouter_Tag(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/recipes/api/v2/tag/1/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.Tag{ID: 1, Name: "Quick", Slug: "quick"}, decode[dto.Tag](t, rec))

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/recipes/api/v2/tag/9/", "").Code)
}
