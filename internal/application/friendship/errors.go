package friendship

import (
	"errors"
	"fmt"

	"github.com/mittr/linkup/internal/domain/errs"
)

// Relationship operation errors. The state-conflict sentinels wrap
// errs.ErrConflict so callers can match the whole class at once.
var (
	// ErrUserNotFound is returned when either side of an operation does not
	// resolve to an existing user.
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfAction is returned when a user targets themselves.
	ErrSelfAction = errors.New("cannot send a friend request to yourself")

	// ErrAlreadyFriends is returned when a request targets an existing friend.
	ErrAlreadyFriends = fmt.Errorf("%w: already friends", errs.ErrConflict)

	// ErrRequestExists is returned when the same request is already pending.
	ErrRequestExists = fmt.Errorf("%w: friend request already sent", errs.ErrConflict)

	// ErrReversePending is returned when the target has already sent the
	// caller a request. The caller should accept that request instead of
	// issuing a crossing one.
	ErrReversePending = fmt.Errorf("%w: this user has already sent you a friend request", errs.ErrConflict)
)
