package auth

import (
	"context"
	"fmt"
	"time"

	userdomain "github.com/mittr/linkup/internal/domain/user"
)

// LoginSessionWriter issues a token pair for a user and records the refresh
// token. Shared between register and login so the session shape stays in one
// place.
type LoginSessionWriter struct {
	tokens     TokenIssuer
	store      RefreshTokenStore
	refreshTTL time.Duration
}

// NewLoginSessionWriter creates the session writer.
func NewLoginSessionWriter(
	tokens TokenIssuer,
	store RefreshTokenStore,
	refreshTTL time.Duration,
) *LoginSessionWriter {
	return &LoginSessionWriter{
		tokens:     tokens,
		store:      store,
		refreshTTL: refreshTTL,
	}
}

func (w *LoginSessionWriter) openSession(ctx context.Context, u *userdomain.User) (Result, error) {
	access, err := w.tokens.IssueAccessToken(u.ID())
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := w.tokens.IssueRefreshToken(u.ID())
	if err != nil {
		return Result{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if storeErr := w.store.Store(ctx, u.ID(), refresh, w.refreshTTL); storeErr != nil {
		return Result{}, fmt.Errorf("failed to store refresh token: %w", storeErr)
	}

	return Result{
		UserID:       u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
