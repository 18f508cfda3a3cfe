package friendship

import (
	"context"
	"fmt"

	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/user"
)

// AcceptRequestUseCase turns a pending request into a friendship.
//
// Matching the legacy behavior, the friendship is created even when no
// pending request exists; the upsert keeps a repeated accept from
// duplicating the edge. The pending request for the pair is removed in the
// same locked section, so no read can observe it on one side only.
type AcceptRequestUseCase struct {
	users       user.Repository
	requests    friendship.RequestRepository
	friendships friendship.Repository
	locks       *PairLock
}

// NewAcceptRequestUseCase creates the use case.
func NewAcceptRequestUseCase(
	users user.Repository,
	requests friendship.RequestRepository,
	friendships friendship.Repository,
	locks *PairLock,
) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{
		users:       users,
		requests:    requests,
		friendships: friendships,
		locks:       locks,
	}
}

// Execute establishes the friendship and clears the pending request.
func (uc *AcceptRequestUseCase) Execute(ctx context.Context, cmd AcceptRequestCommand) error {
	if err := resolveUsers(ctx, uc.users, cmd.AccepterID, cmd.RequesterID); err != nil {
		return err
	}

	f, err := friendship.NewFriendship(cmd.AccepterID, cmd.RequesterID)
	if err != nil {
		return err
	}

	unlock := uc.locks.Lock(cmd.AccepterID, cmd.RequesterID)
	defer unlock()

	if upsertErr := uc.friendships.Upsert(ctx, f); upsertErr != nil {
		return fmt.Errorf("failed to save friendship: %w", upsertErr)
	}

	if delErr := uc.requests.Delete(ctx, cmd.RequesterID, cmd.AccepterID); delErr != nil {
		return fmt.Errorf("failed to clear pending request: %w", delErr)
	}

	return nil
}
