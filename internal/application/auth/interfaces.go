// Package auth contains the registration, login, and token lifecycle use cases.
package auth

import (
	"context"
	"time"

	"github.com/mittr/linkup/internal/domain/uuid"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash returns the hash for a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns an error when they do not match.
	Compare(hash, password string) error
}

// TokenIssuer issues and verifies signed session tokens.
type TokenIssuer interface {
	// IssueAccessToken issues a short-lived access token for the user.
	IssueAccessToken(userID uuid.UUID) (string, error)

	// IssueRefreshToken issues a long-lived refresh token for the user.
	IssueRefreshToken(userID uuid.UUID) (string, error)

	// ValidateRefreshToken verifies a refresh token and returns the user id
	// it was issued to.
	ValidateRefreshToken(token string) (uuid.UUID, error)
}

// RefreshTokenStore persists the currently valid refresh token per user so
// refresh tokens can be rotated and revoked on logout.
type RefreshTokenStore interface {
	// Store saves the user's current refresh token with a TTL.
	Store(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// Get returns the user's stored refresh token, or ErrTokenNotFound.
	Get(ctx context.Context, userID uuid.UUID) (string, error)

	// Delete removes the user's stored refresh token.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Result is returned by login and register.
type Result struct {
	UserID       uuid.UUID
	Username     string
	Email        string
	AccessToken  string
	RefreshToken string
}

// TokenPair is returned by refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
