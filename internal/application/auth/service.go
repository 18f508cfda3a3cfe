package auth

import "context"

// Service aggregates the auth use cases for the HTTP layer.
type Service struct {
	register *RegisterUseCase
	login    *LoginUseCase
	refresh  *RefreshUseCase
	logout   *LogoutUseCase
}

// NewService creates the service from the individual use cases.
func NewService(
	register *RegisterUseCase,
	login *LoginUseCase,
	refresh *RefreshUseCase,
	logout *LogoutUseCase,
) *Service {
	return &Service{
		register: register,
		login:    login,
		refresh:  refresh,
		logout:   logout,
	}
}

// Register creates a new account and opens a session.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (Result, error) {
	return s.register.Execute(ctx, cmd)
}

// Login verifies credentials and opens a session.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (Result, error) {
	return s.login.Execute(ctx, cmd)
}

// Refresh rotates a refresh token into a new token pair.
func (s *Service) Refresh(ctx context.Context, cmd RefreshCommand) (TokenPair, error) {
	return s.refresh.Execute(ctx, cmd)
}

// Logout revokes the user's refresh token.
func (s *Service) Logout(ctx context.Context, cmd LogoutCommand) error {
	return s.logout.Execute(ctx, cmd)
}
