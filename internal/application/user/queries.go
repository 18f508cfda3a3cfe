// Package user contains the user directory queries.
package user

import (
	"github.com/mittr/linkup/internal/domain/uuid"
)

// ListUsersQuery asks for every user except the caller.
type ListUsersQuery struct {
	ExcludeID uuid.UUID
}

// GetUserQuery asks for a single user.
type GetUserQuery struct {
	UserID uuid.UUID
}

// Summary is the minimal user projection for directory listings.
type Summary struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// Detail is the full public view of a user, including their friend ids.
type Detail struct {
	ID       uuid.UUID
	Username string
	Email    string
	Friends  []uuid.UUID
}
