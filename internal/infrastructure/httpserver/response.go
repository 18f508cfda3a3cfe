// Package httpserver provides the router and response helpers for the
// legacy JSON contract the frontend depends on.
package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the `{message}` body used for confirmations and errors.
// The shape is part of the public contract; the SPA matches on it.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondMessage sends a `{message}` body with the given status code.
func RespondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, MessageResponse{Message: message})
}

// RespondOK sends a 200 response with the given payload as-is. List
// endpoints return bare arrays, not an envelope.
func RespondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 response with the given payload.
func RespondCreated(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// RespondNotFound sends the canonical 404 body.
func RespondNotFound(c echo.Context) error {
	return RespondMessage(c, http.StatusNotFound, "User not found")
}

// RespondBadRequest sends a 400 with the given reason.
func RespondBadRequest(c echo.Context, message string) error {
	return RespondMessage(c, http.StatusBadRequest, message)
}

// RespondUnauthorized sends a 401 with the given reason.
func RespondUnauthorized(c echo.Context, message string) error {
	return RespondMessage(c, http.StatusUnauthorized, message)
}

// RespondInternalError sends a 500 carrying the error message. Stack traces
// never reach the client; the recovery middleware logs them.
func RespondInternalError(c echo.Context, err error) error {
	return RespondMessage(c, http.StatusInternalServerError, err.Error())
}
