// Package httphandler contains the Echo HTTP handlers. Response shapes
// follow the legacy contract: `_id` keys, bare arrays for lists and
// `{message}` bodies for confirmations and errors.
package httphandler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	friendapp "github.com/mittr/linkup/internal/application/friendship"
	"github.com/mittr/linkup/internal/domain/uuid"
	"github.com/mittr/linkup/internal/infrastructure/httpserver"
	"github.com/mittr/linkup/internal/middleware"
)

// FriendUserResponse is the user projection embedded in friend responses.
type FriendUserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ReceivedRequestResponse is one entry of GET /friends/requests/received.
type ReceivedRequestResponse struct {
	From      FriendUserResponse `json:"from"`
	Timestamp time.Time          `json:"timestamp"`
}

// SentRequestResponse is one entry of GET /friends/requests/sent.
type SentRequestResponse struct {
	To        FriendUserResponse `json:"to"`
	Timestamp time.Time          `json:"timestamp"`
}

// FriendService defines the friendship operations the handler needs.
// Declared on the consumer side per project guidelines.
type FriendService interface {
	SendRequest(ctx context.Context, cmd friendapp.SendRequestCommand) error
	AcceptRequest(ctx context.Context, cmd friendapp.AcceptRequestCommand) error
	DeclineRequest(ctx context.Context, cmd friendapp.DeclineRequestCommand) error
	RemoveFriend(ctx context.Context, cmd friendapp.RemoveFriendCommand) error
	ListFriends(ctx context.Context, query friendapp.ListFriendsQuery) ([]friendapp.UserView, error)
	ListReceivedRequests(
		ctx context.Context,
		query friendapp.ListReceivedRequestsQuery,
	) ([]friendapp.ReceivedRequestView, error)
	ListSentRequests(
		ctx context.Context,
		query friendapp.ListSentRequestsQuery,
	) ([]friendapp.SentRequestView, error)
}

// FriendHandler handles friend-related HTTP requests.
type FriendHandler struct {
	friendService FriendService
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(friendService FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// RegisterRoutes registers friend routes with the router.
func (h *FriendHandler) RegisterRoutes(r *httpserver.Router) {
	r.Auth().GET("/friends", h.List)
	r.Auth().POST("/friends/request/:userId", h.SendRequest)
	r.Auth().GET("/friends/requests/received", h.ListReceived)
	r.Auth().GET("/friends/requests/sent", h.ListSent)
	r.Auth().POST("/friends/accept/:userId", h.Accept)
	r.Auth().POST("/friends/decline/:userId", h.Decline)
	r.Auth().POST("/friends/remove/:userId", h.Remove)
}

// List handles GET /api/friends.
func (h *FriendHandler) List(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	}

	views, err := h.friendService.ListFriends(c.Request().Context(), friendapp.ListFriendsQuery{
		UserID: userID,
	})
	if err != nil {
		return handleFriendError(c, err)
	}

	resp := make([]FriendUserResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toFriendUserResponse(v))
	}
	return httpserver.RespondOK(c, resp)
}

// SendRequest handles POST /api/friends/request/:userId.
func (h *FriendHandler) SendRequest(c echo.Context) error {
	userID, targetID, err := friendPair(c)
	if err != nil {
		return handleFriendError(c, err)
	}

	sendErr := h.friendService.SendRequest(c.Request().Context(), friendapp.SendRequestCommand{
		FromID: userID,
		ToID:   targetID,
	})
	if sendErr != nil {
		return handleFriendError(c, sendErr)
	}

	return httpserver.RespondMessage(c, http.StatusOK, "Friend request sent")
}

// ListReceived handles GET /api/friends/requests/received.
func (h *FriendHandler) ListReceived(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	}

	views, err := h.friendService.ListReceivedRequests(
		c.Request().Context(),
		friendapp.ListReceivedRequestsQuery{UserID: userID},
	)
	if err != nil {
		return handleFriendError(c, err)
	}

	resp := make([]ReceivedRequestResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, ReceivedRequestResponse{
			From:      toFriendUserResponse(v.From),
			Timestamp: v.SentAt,
		})
	}
	return httpserver.RespondOK(c, resp)
}

// ListSent handles GET /api/friends/requests/sent.
func (h *FriendHandler) ListSent(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	}

	views, err := h.friendService.ListSentRequests(
		c.Request().Context(),
		friendapp.ListSentRequestsQuery{UserID: userID},
	)
	if err != nil {
		return handleFriendError(c, err)
	}

	resp := make([]SentRequestResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, SentRequestResponse{
			To:        toFriendUserResponse(v.To),
			Timestamp: v.SentAt,
		})
	}
	return httpserver.RespondOK(c, resp)
}

// Accept handles POST /api/friends/accept/:userId.
func (h *FriendHandler) Accept(c echo.Context) error {
	userID, requesterID, err := friendPair(c)
	if err != nil {
		return handleFriendError(c, err)
	}

	acceptErr := h.friendService.AcceptRequest(c.Request().Context(), friendapp.AcceptRequestCommand{
		AccepterID:  userID,
		RequesterID: requesterID,
	})
	if acceptErr != nil {
		return handleFriendError(c, acceptErr)
	}

	return httpserver.RespondMessage(c, http.StatusOK, "Friend request accepted")
}

// Decline handles POST /api/friends/decline/:userId.
func (h *FriendHandler) Decline(c echo.Context) error {
	userID, requesterID, err := friendPair(c)
	if err != nil {
		return handleFriendError(c, err)
	}

	declineErr := h.friendService.DeclineRequest(c.Request().Context(), friendapp.DeclineRequestCommand{
		DeclinerID:  userID,
		RequesterID: requesterID,
	})
	if declineErr != nil {
		return handleFriendError(c, declineErr)
	}

	return httpserver.RespondMessage(c, http.StatusOK, "Friend request declined")
}

// Remove handles POST /api/friends/remove/:userId.
func (h *FriendHandler) Remove(c echo.Context) error {
	userID, otherID, err := friendPair(c)
	if err != nil {
		return handleFriendError(c, err)
	}

	removeErr := h.friendService.RemoveFriend(c.Request().Context(), friendapp.RemoveFriendCommand{
		SelfID:  userID,
		OtherID: otherID,
	})
	if removeErr != nil {
		return handleFriendError(c, removeErr)
	}

	return httpserver.RespondMessage(c, http.StatusOK, "Friend removed successfully")
}

// friendPair failure sentinels, mapped to responses by handleFriendError.
var (
	errNoIdentity  = errors.New("no authenticated user in context")
	errBadTargetID = errors.New("target is not a valid user id")
)

// friendPair extracts the caller ID from context and the target user ID from
// the :userId path parameter. It never writes to the response; failures come
// back as sentinels so the caller responds exactly once.
func friendPair(c echo.Context) (current, target uuid.UUID, err error) {
	current = middleware.GetUserID(c)
	if current.IsZero() {
		return current, target, errNoIdentity
	}

	target, parseErr := uuid.ParseUUID(c.Param("userId"))
	if parseErr != nil {
		return current, target, errBadTargetID
	}

	return current, target, nil
}

func toFriendUserResponse(v friendapp.UserView) FriendUserResponse {
	return FriendUserResponse{
		ID:       v.ID.String(),
		Username: v.Username,
		Email:    v.Email,
	}
}

func handleFriendError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errNoIdentity):
		return httpserver.RespondUnauthorized(c, "No authentication token, access denied")
	// A malformed target ID cannot belong to any user, so it surfaces as
	// the canonical 404.
	case errors.Is(err, errBadTargetID), errors.Is(err, friendapp.ErrUserNotFound):
		return httpserver.RespondNotFound(c)
	case errors.Is(err, friendapp.ErrSelfAction):
		return httpserver.RespondBadRequest(c, "Cannot send a friend request to yourself")
	case errors.Is(err, friendapp.ErrAlreadyFriends):
		return httpserver.RespondBadRequest(c, "Already friends")
	case errors.Is(err, friendapp.ErrRequestExists):
		return httpserver.RespondBadRequest(c, "Friend request already sent")
	case errors.Is(err, friendapp.ErrReversePending):
		return httpserver.RespondBadRequest(c, "This user has already sent you a friend request")
	default:
		return httpserver.RespondInternalError(c, err)
	}
}
