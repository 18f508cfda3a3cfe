package httphandler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	userapp "github.com/mittr/linkup/internal/application/user"
	"github.com/mittr/linkup/internal/domain/uuid"
	"github.com/mittr/linkup/internal/infrastructure/httpserver"
	"github.com/mittr/linkup/internal/middleware"
)

// UserSummaryResponse is one entry of GET /users.
type UserSummaryResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetailResponse is the body of GET /users/:id. Friends holds friend
// user ids, not embedded profiles.
type UserDetailResponse struct {
	ID       string   `json:"_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Friends  []string `json:"friends"`
}

// UserService defines the user directory operations the handler needs.
// Declared on the consumer side per project guidelines.
type UserService interface {
	ListUsers(ctx context.Context, query userapp.ListUsersQuery) ([]userapp.Summary, error)
	GetUser(ctx context.Context, query userapp.GetUserQuery) (userapp.Detail, error)
}

// UserHandler handles user directory HTTP requests.
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers user routes with the router.
func (h *UserHandler) RegisterRoutes(r *httpserver.Router) {
	r.Auth().GET("/users", h.List)
	r.Auth().GET("/users/:id", h.Get)
}

// List handles GET /api/users. Returns every user except the caller.
func (h *UserHandler) List(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	}

	summaries, err := h.userService.ListUsers(c.Request().Context(), userapp.ListUsersQuery{
		ExcludeID: userID,
	})
	if err != nil {
		return handleUserError(c, err)
	}

	resp := make([]UserSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, UserSummaryResponse{
			ID:       s.ID.String(),
			Username: s.Username,
			Email:    s.Email,
		})
	}
	return httpserver.RespondOK(c, resp)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	}

	targetID, parseErr := uuid.ParseUUID(c.Param("id"))
	if parseErr != nil {
		return httpserver.RespondNotFound(c)
	}

	detail, err := h.userService.GetUser(c.Request().Context(), userapp.GetUserQuery{
		UserID: targetID,
	})
	if err != nil {
		return handleUserError(c, err)
	}

	friends := make([]string, 0, len(detail.Friends))
	for _, id := range detail.Friends {
		friends = append(friends, id.String())
	}

	return httpserver.RespondOK(c, UserDetailResponse{
		ID:       detail.ID.String(),
		Username: detail.Username,
		Email:    detail.Email,
		Friends:  friends,
	})
}

func handleUserError(c echo.Context, err error) error {
	if errors.Is(err, userapp.ErrUserNotFound) {
		return httpserver.RespondNotFound(c)
	}
	return httpserver.RespondInternalError(c, err)
}
