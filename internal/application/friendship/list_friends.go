package friendship

import (
	"context"
	"fmt"

	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/user"
)

// ListFriendsUseCase returns the resolved friends of a user.
type ListFriendsUseCase struct {
	users       user.Repository
	friendships friendship.Repository
}

// NewListFriendsUseCase creates the use case.
func NewListFriendsUseCase(
	users user.Repository,
	friendships friendship.Repository,
) *ListFriendsUseCase {
	return &ListFriendsUseCase{
		users:       users,
		friendships: friendships,
	}
}

// Execute loads the user's friendship edges and resolves the far endpoints.
// Edges pointing at deleted users are skipped.
func (uc *ListFriendsUseCase) Execute(ctx context.Context, query ListFriendsQuery) ([]UserView, error) {
	if err := resolveUsers(ctx, uc.users, query.UserID); err != nil {
		return nil, err
	}

	edges, err := uc.friendships.ListByUser(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}

	views := make([]UserView, 0, len(edges))
	for _, edge := range edges {
		view, ok, viewErr := viewOf(ctx, uc.users, edge.Other(query.UserID))
		if viewErr != nil {
			return nil, viewErr
		}
		if !ok {
			continue
		}
		views = append(views, view)
	}

	return views, nil
}
