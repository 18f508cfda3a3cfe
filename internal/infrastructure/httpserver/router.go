package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mittr/linkup/internal/middleware"
)

// DefaultAPIPrefix is the route prefix the legacy frontend calls.
const DefaultAPIPrefix = "/api"

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	// Logger is the structured logger for router events.
	Logger *slog.Logger

	// AuthMiddleware is the authentication middleware for protected routes.
	AuthMiddleware echo.MiddlewareFunc

	// CORSConfig is the CORS configuration.
	CORSConfig middleware.CORSConfig

	// LoggingConfig is the logging middleware configuration.
	LoggingConfig middleware.LoggingConfig

	// RecoveryConfig is the recovery middleware configuration.
	RecoveryConfig middleware.RecoveryConfig

	// APIPrefix is the prefix for all API routes. Default is "/api".
	APIPrefix string
}

// Router manages the route groups and middleware chains.
type Router struct {
	echo   *echo.Echo
	config RouterConfig
	logger *slog.Logger

	public *echo.Group
	auth   *echo.Group
}

// NewRouter creates a new router with the given configuration.
func NewRouter(e *echo.Echo, config RouterConfig) *Router {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.APIPrefix == "" {
		config.APIPrefix = DefaultAPIPrefix
	}

	r := &Router{
		echo:   e,
		config: config,
		logger: config.Logger,
	}

	r.setupGlobalMiddleware()
	r.setupRouteGroups()

	return r
}

// setupGlobalMiddleware applies global middleware to the Echo instance.
func (r *Router) setupGlobalMiddleware() {
	// Recovery must be first to catch all panics.
	r.echo.Use(middleware.RecoveryWithConfig(r.config.RecoveryConfig))
	r.echo.Use(middleware.CORS(r.config.CORSConfig))
	r.echo.Use(middleware.Logging(r.config.LoggingConfig))
}

// setupRouteGroups creates the route group hierarchy.
func (r *Router) setupRouteGroups() {
	r.public = r.echo.Group(r.config.APIPrefix)

	if r.config.AuthMiddleware != nil {
		r.auth = r.public.Group("", r.config.AuthMiddleware)
	} else {
		r.auth = r.public
		r.logger.Warn("no auth middleware configured, authenticated routes are public")
	}
}

// Echo returns the underlying Echo instance.
func (r *Router) Echo() *echo.Echo {
	return r.echo
}

// Public returns the public route group (no authentication required).
func (r *Router) Public() *echo.Group {
	return r.public
}

// Auth returns the authenticated route group (requires a valid token).
func (r *Router) Auth() *echo.Group {
	return r.auth
}

// HealthResponse is the health endpoint body.
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterHealthEndpoints registers /health and /ready outside the API prefix.
func (r *Router) RegisterHealthEndpoints(ready func(ctx context.Context) bool) {
	r.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	})

	r.echo.GET("/ready", func(c echo.Context) error {
		if ready == nil || ready(c.Request().Context()) {
			return c.JSON(http.StatusOK, HealthResponse{Status: "ready"})
		}
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "not ready"})
	})
}
