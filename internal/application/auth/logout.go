package auth

import (
	"context"
	"fmt"
)

// LogoutUseCase revokes the user's refresh token. Access tokens simply age
// out at their short TTL.
type LogoutUseCase struct {
	store RefreshTokenStore
}

// NewLogoutUseCase creates the use case.
func NewLogoutUseCase(store RefreshTokenStore) *LogoutUseCase {
	return &LogoutUseCase{store: store}
}

// Execute deletes the stored refresh token. Logging out twice is fine.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.store.Delete(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
