package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/mittr/linkup/internal/middleware"
)

func corsPreflight(e *echo.Echo, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/friends", nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCORS_DefaultAllowsAnyOrigin(t *testing.T) {
	e := echo.New()
	e.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	rec := corsPreflight(e, "http://anywhere.example")

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	cfg := middleware.DefaultCORSConfig()
	cfg.AllowOrigins = []string{"http://localhost:3000"}
	cfg.AllowCredentials = true

	e := echo.New()
	e.Use(middleware.CORS(cfg))

	rec := corsPreflight(e, "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	rec = corsPreflight(e, "http://evil.example")
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
