package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/recipes/internal/apperr"
	pkgserver "github.com/DjordjeVuckovic/recipes/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unhealthy struct{}

func (unhealthy) Healthy(context.Context) bool { return false }

func newTestServer(hc pkgserver.HealthChecker) *Server {
	cfg := &Config{Port: DefaultPort, CorsOrigins: []string{"*"}}
	return New(cfg, hc).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")
}

func serve(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_HealthCheck(t *testing.T) {
	rec := serve(newTestServer(pkgserver.NewOkHealthChecker()), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = serve(newTestServer(unhealthy{}), "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_ErrorHandler(t *testing.T) {
	s := newTestServer(pkgserver.NewOkHealthChecker())
	s.Echo.GET("/missing", func(c echo.Context) error {
		return apperr.NewNotFound("recipe", 1)
	})
	s.Echo.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := serve(s, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "recipe not found: 1")

	rec = serve(s, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = serve(s, "/no-such-route")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", " http://a.com , ,http://b.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.CorsOrigins)

	t.Setenv("PORT", "70000")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}
