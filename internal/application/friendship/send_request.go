package friendship

import (
	"context"
	"errors"
	"fmt"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/user"
)

// SendRequestUseCase creates a pending friend request.
type SendRequestUseCase struct {
	users       user.Repository
	requests    friendship.RequestRepository
	friendships friendship.Repository
	locks       *PairLock
}

// NewSendRequestUseCase creates the use case.
func NewSendRequestUseCase(
	users user.Repository,
	requests friendship.RequestRepository,
	friendships friendship.Repository,
	locks *PairLock,
) *SendRequestUseCase {
	return &SendRequestUseCase{
		users:       users,
		requests:    requests,
		friendships: friendships,
		locks:       locks,
	}
}

// Execute validates the transition and inserts the request edge.
func (uc *SendRequestUseCase) Execute(ctx context.Context, cmd SendRequestCommand) error {
	if cmd.FromID == cmd.ToID {
		return ErrSelfAction
	}
	if err := resolveUsers(ctx, uc.users, cmd.FromID, cmd.ToID); err != nil {
		return err
	}

	unlock := uc.locks.Lock(cmd.FromID, cmd.ToID)
	defer unlock()

	areFriends, err := uc.friendships.Exists(ctx, cmd.FromID, cmd.ToID)
	if err != nil {
		return fmt.Errorf("failed to check friendship: %w", err)
	}
	if areFriends {
		return ErrAlreadyFriends
	}

	pending, err := uc.requests.Exists(ctx, cmd.FromID, cmd.ToID)
	if err != nil {
		return fmt.Errorf("failed to check pending request: %w", err)
	}
	if pending {
		return ErrRequestExists
	}

	// A crossing request is rejected rather than letting both directions
	// accumulate; the caller already has a request to act on.
	reverse, err := uc.requests.Exists(ctx, cmd.ToID, cmd.FromID)
	if err != nil {
		return fmt.Errorf("failed to check reverse request: %w", err)
	}
	if reverse {
		return ErrReversePending
	}

	req, err := friendship.NewFriendRequest(cmd.FromID, cmd.ToID)
	if err != nil {
		return err
	}

	if insertErr := uc.requests.Insert(ctx, req); insertErr != nil {
		// The unique index backs up the check above when another writer
		// slipped in outside this process.
		if errors.Is(insertErr, errs.ErrAlreadyExists) {
			return ErrRequestExists
		}
		return fmt.Errorf("failed to save friend request: %w", insertErr)
	}

	return nil
}
