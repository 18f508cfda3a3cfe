package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/friendship"
	userdomain "github.com/mittr/linkup/internal/domain/user"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// GetUserUseCase returns the public view of a single user, friends included.
type GetUserUseCase struct {
	users       userdomain.Repository
	friendships friendship.Repository
}

// NewGetUserUseCase creates the use case.
func NewGetUserUseCase(
	users userdomain.Repository,
	friendships friendship.Repository,
) *GetUserUseCase {
	return &GetUserUseCase{
		users:       users,
		friendships: friendships,
	}
}

// Execute loads the user and materializes their friend id list from the
// edge store.
func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (Detail, error) {
	u, err := uc.users.FindByID(ctx, query.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Detail{}, ErrUserNotFound
		}
		return Detail{}, fmt.Errorf("failed to load user: %w", err)
	}

	edges, err := uc.friendships.ListByUser(ctx, u.ID())
	if err != nil {
		return Detail{}, fmt.Errorf("failed to list friendships: %w", err)
	}

	detail := Detail{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		Friends:  make([]uuid.UUID, 0, len(edges)),
	}
	for _, edge := range edges {
		detail.Friends = append(detail.Friends, edge.Other(u.ID()))
	}

	return detail, nil
}
