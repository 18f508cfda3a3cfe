// Package friendship models the relationship graph as canonical edges:
// a directed FriendRequest edge for pending requests and an undirected
// Friendship edge for established friendships. Every view the API exposes
// (friends list, received/sent requests) is derived from these edges, so
// there are no mirrored per-user lists that can diverge.
package friendship

import (
	"time"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// FriendRequest is a pending, directed friend proposal.
type FriendRequest struct {
	From   uuid.UUID
	To     uuid.UUID
	SentAt time.Time
}

// NewFriendRequest creates a pending request edge. Self-targeted requests
// are invalid.
func NewFriendRequest(from, to uuid.UUID) (FriendRequest, error) {
	if from.IsZero() || to.IsZero() {
		return FriendRequest{}, errs.ErrInvalidInput
	}
	if from == to {
		return FriendRequest{}, errs.ErrInvalidInput
	}
	return FriendRequest{
		From:   from,
		To:     to,
		SentAt: time.Now().UTC(),
	}, nil
}

// Friendship is an established, undirected friendship edge. UserA and UserB
// are stored in canonical order (UserA < UserB) so each unordered pair maps
// to exactly one edge.
type Friendship struct {
	UserA     uuid.UUID
	UserB     uuid.UUID
	CreatedAt time.Time
}

// NewFriendship creates a friendship edge for the unordered pair {a, b}.
func NewFriendship(a, b uuid.UUID) (Friendship, error) {
	if a.IsZero() || b.IsZero() {
		return Friendship{}, errs.ErrInvalidInput
	}
	if a == b {
		return Friendship{}, errs.ErrInvalidInput
	}
	first, second := SortPair(a, b)
	return Friendship{
		UserA:     first,
		UserB:     second,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Other returns the endpoint of the edge that is not the given user.
func (f Friendship) Other(id uuid.UUID) uuid.UUID {
	if f.UserA == id {
		return f.UserB
	}
	return f.UserA
}

// SortPair returns the two ids in canonical order.
func SortPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if b < a {
		return b, a
	}
	return a, b
}
