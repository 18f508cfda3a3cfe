package user

import (
	"context"
	"fmt"

	userdomain "github.com/mittr/linkup/internal/domain/user"
)

// ListUsersUseCase returns the user directory, minus the caller.
type ListUsersUseCase struct {
	users userdomain.Repository
}

// NewListUsersUseCase creates the use case.
func NewListUsersUseCase(users userdomain.Repository) *ListUsersUseCase {
	return &ListUsersUseCase{users: users}
}

// Execute lists all users except the excluded one.
func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]Summary, error) {
	all, err := uc.users.ListExcept(ctx, query.ExcludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]Summary, 0, len(all))
	for _, u := range all {
		summaries = append(summaries, Summary{
			ID:       u.ID(),
			Username: u.Username(),
			Email:    u.Email(),
		})
	}

	return summaries, nil
}
