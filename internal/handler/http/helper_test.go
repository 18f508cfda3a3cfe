package httphandler_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mittr/linkup/internal/domain/uuid"
	"github.com/mittr/linkup/internal/infrastructure/httpserver"
	"github.com/mittr/linkup/internal/middleware"
)

// registrar is implemented by every handler in this package.
type registrar interface {
	RegisterRoutes(r *httpserver.Router)
}

// newTestServer builds an echo instance with the real router wiring and a
// stub auth middleware that injects userID. A zero userID simulates an
// unauthenticated request reaching the handler.
func newTestServer(t *testing.T, userID uuid.UUID, handlers ...registrar) *echo.Echo {
	t.Helper()

	e := echo.New()
	authStub := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !userID.IsZero() {
				c.Set(string(middleware.ContextKeyUserID), userID)
			}
			return next(c)
		}
	}

	r := httpserver.NewRouter(e, httpserver.RouterConfig{AuthMiddleware: authStub})
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func mustUUID(s string) uuid.UUID {
	return uuid.MustParseUUID(s)
}

var (
	aliceID = mustUUID("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	bobID   = mustUUID("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")
)
