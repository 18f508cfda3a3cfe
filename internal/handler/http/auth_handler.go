package httphandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authapp "github.com/mittr/linkup/internal/application/auth"
	"github.com/mittr/linkup/internal/infrastructure/httpserver"
	"github.com/mittr/linkup/internal/middleware"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthUserResponse is the user projection embedded in auth responses.
type AuthUserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionResponse is the body of register and login responses.
type SessionResponse struct {
	Token        string           `json:"token"`
	RefreshToken string           `json:"refreshToken"`
	User         AuthUserResponse `json:"user"`
}

// TokenPairResponse is the body of refresh responses.
type TokenPairResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService defines the auth operations the handler needs.
// Declared on the consumer side per project guidelines.
type AuthService interface {
	Register(ctx context.Context, cmd authapp.RegisterCommand) (authapp.Result, error)
	Login(ctx context.Context, cmd authapp.LoginCommand) (authapp.Result, error)
	Refresh(ctx context.Context, cmd authapp.RefreshCommand) (authapp.TokenPair, error)
	Logout(ctx context.Context, cmd authapp.LogoutCommand) error
}

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers auth routes with the router. Register, login and
// refresh are public; logout needs a valid access token.
func (h *AuthHandler) RegisterRoutes(r *httpserver.Router) {
	r.Public().POST("/auth/register", h.Register)
	r.Public().POST("/auth/login", h.Login)
	r.Public().POST("/auth/refresh", h.Refresh)
	r.Auth().POST("/auth/logout", h.Logout)
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondBadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Register(c.Request().Context(), authapp.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handleAuthError(c, err)
	}

	return httpserver.RespondCreated(c, toSessionResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondBadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Request().Context(), authapp.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return handleAuthError(c, err)
	}

	return httpserver.RespondOK(c, toSessionResponse(result))
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondBadRequest(c, "Invalid request body")
	}

	pair, err := h.authService.Refresh(c.Request().Context(), authapp.RefreshCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return handleAuthError(c, err)
	}

	return httpserver.RespondOK(c, TokenPairResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	}

	if err := h.authService.Logout(c.Request().Context(), authapp.LogoutCommand{UserID: userID}); err != nil {
		return handleAuthError(c, err)
	}

	return httpserver.RespondMessage(c, http.StatusOK, "Logged out")
}

func toSessionResponse(result authapp.Result) SessionResponse {
	return SessionResponse{
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		User: AuthUserResponse{
			ID:       result.UserID.String(),
			Username: result.Username,
			Email:    result.Email,
		},
	}
}

func handleAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, authapp.ErrUsernameTooShort):
		return httpserver.RespondBadRequest(c, "Username must be at least 3 characters")
	case errors.Is(err, authapp.ErrPasswordTooShort):
		return httpserver.RespondBadRequest(c, "Password must be at least 6 characters")
	case errors.Is(err, authapp.ErrEmailInvalid):
		return httpserver.RespondBadRequest(c, "Invalid email")
	case errors.Is(err, authapp.ErrUsernameTaken):
		return httpserver.RespondBadRequest(c, "Username already exists")
	case errors.Is(err, authapp.ErrEmailTaken):
		return httpserver.RespondBadRequest(c, "Email already exists")
	case errors.Is(err, authapp.ErrInvalidCredentials):
		return httpserver.RespondBadRequest(c, "Invalid credentials")
	case errors.Is(err, authapp.ErrInvalidRefreshToken):
		return httpserver.RespondUnauthorized(c, "Invalid refresh token")
	default:
		return httpserver.RespondInternalError(c, err)
	}
}
