// Package auth provides token issuing/verification, password hashing, and
// the Redis-backed refresh token store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mittr/linkup/internal/domain/uuid"
)

// Token types embedded in the "typ" claim so an access token can never be
// replayed as a refresh token or vice versa.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// tokenIssuer is the "iss" claim on every token this service signs.
const tokenIssuer = "linkup"

// Token errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// sessionClaims is the claim set for both token types.
type sessionClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed JWTs. The signing secret is
// injected from configuration at startup.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a token manager.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssueAccessToken issues a short-lived access token for the user.
func (m *TokenManager) IssueAccessToken(userID uuid.UUID) (string, error) {
	return m.issue(userID, tokenTypeAccess, m.accessTTL)
}

// IssueRefreshToken issues a long-lived refresh token for the user.
func (m *TokenManager) IssueRefreshToken(userID uuid.UUID) (string, error) {
	return m.issue(userID, tokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) issue(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	if userID.IsZero() {
		return "", errors.New("userID is required")
	}

	now := time.Now()
	claims := sessionClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken verifies an access token and returns the user id.
// The context parameter keeps the signature aligned with validators that
// need remote key material; this implementation is purely local.
func (m *TokenManager) ValidateAccessToken(_ context.Context, token string) (uuid.UUID, error) {
	return m.validate(token, tokenTypeAccess)
}

// ValidateRefreshToken verifies a refresh token and returns the user id.
func (m *TokenManager) ValidateRefreshToken(token string) (uuid.UUID, error) {
	return m.validate(token, tokenTypeRefresh)
}

func (m *TokenManager) validate(token, wantType string) (uuid.UUID, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !parsed.Valid || claims.TokenType != wantType {
		return "", ErrInvalidToken
	}

	userID, err := uuid.ParseUUID(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return userID, nil
}
