package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"
)

// RefreshUseCase rotates a refresh token into a new token pair.
type RefreshUseCase struct {
	tokens     TokenIssuer
	store      RefreshTokenStore
	refreshTTL time.Duration
}

// NewRefreshUseCase creates the use case.
func NewRefreshUseCase(
	tokens TokenIssuer,
	store RefreshTokenStore,
	refreshTTL time.Duration,
) *RefreshUseCase {
	return &RefreshUseCase{
		tokens:     tokens,
		store:      store,
		refreshTTL: refreshTTL,
	}
}

// Execute validates the presented refresh token against the stored one and
// rotates it. A token that was already rotated out is rejected.
func (uc *RefreshUseCase) Execute(ctx context.Context, cmd RefreshCommand) (TokenPair, error) {
	if cmd.RefreshToken == "" {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	userID, err := uc.tokens.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	stored, err := uc.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, fmt.Errorf("failed to load refresh token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(cmd.RefreshToken)) != 1 {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	access, err := uc.tokens.IssueAccessToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := uc.tokens.IssueRefreshToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if storeErr := uc.store.Store(ctx, userID, refresh, uc.refreshTTL); storeErr != nil {
		return TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", storeErr)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
