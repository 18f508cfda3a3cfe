package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mittr/linkup/internal/domain/errs"
	userdomain "github.com/mittr/linkup/internal/domain/user"
)

// LoginUseCase authenticates a user and issues a token pair.
type LoginUseCase struct {
	users  userdomain.Repository
	hasher PasswordHasher
	login  *LoginSessionWriter
}

// NewLoginUseCase creates the use case.
func NewLoginUseCase(
	users userdomain.Repository,
	hasher PasswordHasher,
	sessions *LoginSessionWriter,
) *LoginUseCase {
	return &LoginUseCase{
		users:  users,
		hasher: hasher,
		login:  sessions,
	}
}

// Execute verifies the credentials and opens a session. Unknown username and
// wrong password both map to ErrInvalidCredentials.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (Result, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return Result{}, ErrInvalidCredentials
	}

	u, err := uc.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, fmt.Errorf("failed to load user: %w", err)
	}

	if compareErr := uc.hasher.Compare(u.PasswordHash(), cmd.Password); compareErr != nil {
		return Result{}, ErrInvalidCredentials
	}

	return uc.login.openSession(ctx, u)
}
