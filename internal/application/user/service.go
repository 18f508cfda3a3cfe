package user

import "context"

// Service aggregates the user read use cases for the HTTP layer.
type Service struct {
	list *ListUsersUseCase
	get  *GetUserUseCase
}

// NewService creates the service from the individual use cases.
func NewService(list *ListUsersUseCase, get *GetUserUseCase) *Service {
	return &Service{list: list, get: get}
}

// ListUsers returns every user except the excluded one.
func (s *Service) ListUsers(ctx context.Context, query ListUsersQuery) ([]Summary, error) {
	return s.list.Execute(ctx, query)
}

// GetUser returns one user with their friend ids.
func (s *Service) GetUser(ctx context.Context, query GetUserQuery) (Detail, error) {
	return s.get.Execute(ctx, query)
}
