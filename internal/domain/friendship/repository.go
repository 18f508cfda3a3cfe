package friendship

import (
	"context"

	"github.com/mittr/linkup/internal/domain/uuid"
)

// RequestRepository defines the persistence contract for pending request edges.
type RequestRepository interface {
	// Insert stores a pending request. Returns errs.ErrAlreadyExists when a
	// request with the same (from, to) pair is already stored.
	Insert(ctx context.Context, req FriendRequest) error

	// Delete removes the (from, to) request. Removing an absent request is
	// not an error.
	Delete(ctx context.Context, from, to uuid.UUID) error

	// Exists reports whether a (from, to) request is pending.
	Exists(ctx context.Context, from, to uuid.UUID) (bool, error)

	// ListByReceiver returns requests addressed to the user, oldest first.
	ListByReceiver(ctx context.Context, to uuid.UUID) ([]FriendRequest, error)

	// ListBySender returns requests issued by the user, oldest first.
	ListBySender(ctx context.Context, from uuid.UUID) ([]FriendRequest, error)
}

// Repository defines the persistence contract for friendship edges.
type Repository interface {
	// Upsert stores the friendship edge for the unordered pair. Storing an
	// existing edge is a no-op, which makes a repeated accept idempotent.
	Upsert(ctx context.Context, f Friendship) error

	// Delete removes the edge for the unordered pair. Removing an absent
	// edge is not an error.
	Delete(ctx context.Context, a, b uuid.UUID) error

	// Exists reports whether the pair is friends.
	Exists(ctx context.Context, a, b uuid.UUID) (bool, error)

	// ListByUser returns all friendship edges containing the user, oldest
	// first.
	ListByUser(ctx context.Context, id uuid.UUID) ([]Friendship, error)
}
