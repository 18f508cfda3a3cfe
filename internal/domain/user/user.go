// Package user contains the User aggregate and its repository contract.
package user

import (
	"strings"
	"time"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// Validation limits, matching what the legacy service enforced at the schema level.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// User represents a registered account.
type User struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with an already-hashed password.
func NewUser(username, email, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < MinUsernameLength {
		return nil, errs.ErrInvalidInput
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidInput
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidInput
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.NewUUID(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct restores a user from storage.
func Reconstruct(
	id uuid.UUID,
	username, email, passwordHash string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the user id.
func (u *User) ID() uuid.UUID {
	return u.id
}

// Username returns the username.
func (u *User) Username() string {
	return u.username
}

// Email returns the email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the time of the last update.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
