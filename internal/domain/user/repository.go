package user

import (
	"context"

	"github.com/mittr/linkup/internal/domain/uuid"
)

// Repository defines the persistence contract for users.
type Repository interface {
	// FindByID finds a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists a user (insert or update).
	Save(ctx context.Context, u *User) error

	// ListExcept returns all users except the given one, ordered by username.
	ListExcept(ctx context.Context, exclude uuid.UUID) ([]*User, error)
}
