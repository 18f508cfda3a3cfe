package auth

import (
	"errors"
	"fmt"

	"github.com/mittr/linkup/internal/domain/errs"
)

// Auth errors. The credential/token failures wrap errs.ErrUnauthorized so
// callers can match the whole class at once.
var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	// Deliberately the same error for both cases.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", errs.ErrUnauthorized)

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUsernameTooShort is returned when the username fails validation.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")

	// ErrPasswordTooShort is returned when the password fails validation.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrEmailInvalid is returned when the email fails validation.
	ErrEmailInvalid = errors.New("invalid email address")

	// ErrInvalidRefreshToken is returned when a refresh token is missing,
	// malformed, expired, or superseded by a newer one.
	ErrInvalidRefreshToken = fmt.Errorf("%w: refresh token is invalid or expired", errs.ErrUnauthorized)

	// ErrTokenNotFound is returned by RefreshTokenStore.Get when no token is
	// stored for the user.
	ErrTokenNotFound = errors.New("token not found")
)
