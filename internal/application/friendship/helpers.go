package friendship

import (
	"context"
	"errors"
	"fmt"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/user"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// resolveUsers checks that every given id resolves to an existing user.
// A miss on any id yields ErrUserNotFound.
func resolveUsers(ctx context.Context, users user.Repository, ids ...uuid.UUID) error {
	for _, id := range ids {
		if id.IsZero() {
			return ErrUserNotFound
		}
		if _, err := users.FindByID(ctx, id); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to resolve user %s: %w", id, err)
		}
	}
	return nil
}

// viewOf loads the minimal projection for a user id. The boolean reports
// whether the user still resolves; dangling references are reported as
// absent, not as errors, so deleted users silently drop out of lists.
func viewOf(ctx context.Context, users user.Repository, id uuid.UUID) (UserView, bool, error) {
	u, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return UserView{}, false, nil
		}
		return UserView{}, false, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return UserView{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
	}, true, nil
}
