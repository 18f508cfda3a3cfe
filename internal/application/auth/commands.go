package auth

import (
	"github.com/mittr/linkup/internal/domain/uuid"
)

// RegisterCommand creates a new account.
type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

// LoginCommand authenticates an existing account.
type LoginCommand struct {
	Username string
	Password string
}

// RefreshCommand exchanges a refresh token for a new token pair.
type RefreshCommand struct {
	RefreshToken string
}

// LogoutCommand revokes the user's refresh token.
type LogoutCommand struct {
	UserID uuid.UUID
}
