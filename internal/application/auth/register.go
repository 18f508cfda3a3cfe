package auth

import (
	"context"
	"fmt"
	"strings"

	userdomain "github.com/mittr/linkup/internal/domain/user"
)

// RegisterUseCase creates a new account and issues a first token pair.
type RegisterUseCase struct {
	users  userdomain.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	login  *LoginSessionWriter
}

// NewRegisterUseCase creates the use case.
func NewRegisterUseCase(
	users userdomain.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	sessions *LoginSessionWriter,
) *RegisterUseCase {
	return &RegisterUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		login:  sessions,
	}
}

// Execute validates the command, stores the user, and logs them in.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (Result, error) {
	if err := uc.validate(cmd); err != nil {
		return Result{}, err
	}

	username := strings.TrimSpace(cmd.Username)
	email := strings.TrimSpace(cmd.Email)

	taken, err := uc.users.ExistsByUsername(ctx, username)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return Result{}, ErrUsernameTaken
	}

	taken, err = uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return Result{}, ErrEmailTaken
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := userdomain.NewUser(username, email, hash)
	if err != nil {
		return Result{}, err
	}

	if saveErr := uc.users.Save(ctx, u); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save user: %w", saveErr)
	}

	return uc.login.openSession(ctx, u)
}

func (uc *RegisterUseCase) validate(cmd RegisterCommand) error {
	if len(strings.TrimSpace(cmd.Username)) < userdomain.MinUsernameLength {
		return ErrUsernameTooShort
	}
	email := strings.TrimSpace(cmd.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailInvalid
	}
	if len(cmd.Password) < userdomain.MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
