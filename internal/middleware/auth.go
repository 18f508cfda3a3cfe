// Package middleware contains the Echo middleware stack: authentication,
// request logging, panic recovery and CORS.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mittr/linkup/internal/domain/uuid"
)

// Context keys for authentication data.
type contextKey string

// ContextKeyUserID is the context key for the authenticated user's ID.
const ContextKeyUserID contextKey = "user_id"

// Auth errors.
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
)

// TokenValidator defines the interface for validating access tokens.
type TokenValidator interface {
	// ValidateAccessToken validates an access token and returns the user ID it
	// was issued to.
	ValidateAccessToken(ctx context.Context, token string) (uuid.UUID, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	// Logger is the structured logger for auth events.
	Logger *slog.Logger

	// TokenValidator validates access tokens.
	TokenValidator TokenValidator

	// SkipPaths are paths that don't require authentication.
	SkipPaths []string
}

// DefaultAuthConfig returns an AuthConfig with sensible defaults.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		Logger: slog.Default(),
		SkipPaths: []string{
			"/health",
			"/ready",
			"/api/auth/register",
			"/api/auth/login",
			"/api/auth/refresh",
		},
	}
}

// Auth returns an authentication middleware with the given configuration.
// The 401 bodies are part of the legacy contract the frontend matches on.
func Auth(config AuthConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	skipPaths := make(map[string]struct{}, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skipPaths[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if _, ok := skipPaths[path]; ok {
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			token, tokenErr := extractBearerToken(authHeader)
			if tokenErr != nil {
				return respondAuthError(c, tokenErr)
			}

			if config.TokenValidator == nil {
				config.Logger.Error("token validator not configured")
				return respondAuthError(c, ErrInvalidToken)
			}

			userID, validateErr := config.TokenValidator.ValidateAccessToken(c.Request().Context(), token)
			if validateErr != nil {
				config.Logger.Warn("token validation failed",
					slog.String("error", validateErr.Error()),
					slog.String("path", path),
					slog.String("remote_ip", c.RealIP()),
				)
				return respondAuthError(c, validateErr)
			}

			c.Set(string(ContextKeyUserID), userID)

			config.Logger.Debug("user authenticated",
				slog.String("user_id", userID.String()),
				slog.String("path", path),
			)

			return next(c)
		}
	}
}

// extractBearerToken extracts the token from a Bearer authorization header.
func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// respondAuthError sends an authentication error response in the legacy
// `{message}` shape.
func respondAuthError(c echo.Context, err error) error {
	message := "Token is not valid"
	if errors.Is(err, ErrMissingAuthHeader) {
		message = "No authentication token, access denied"
	}

	return c.JSON(http.StatusUnauthorized, map[string]string{
		"message": message,
	})
}

// GetUserID extracts the authenticated user ID from the echo context.
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(string(ContextKeyUserID)).(uuid.UUID); ok {
		return id
	}
	return uuid.UUID("")
}
