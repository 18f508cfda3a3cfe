package friendship

import (
	"context"
	"fmt"

	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/user"
)

// DeclineRequestUseCase drops a pending request without creating a
// friendship. Declining an absent request succeeds; deleting a missing edge
// leaves the store in the same state a successful decline would.
type DeclineRequestUseCase struct {
	users    user.Repository
	requests friendship.RequestRepository
	locks    *PairLock
}

// NewDeclineRequestUseCase creates the use case.
func NewDeclineRequestUseCase(
	users user.Repository,
	requests friendship.RequestRepository,
	locks *PairLock,
) *DeclineRequestUseCase {
	return &DeclineRequestUseCase{
		users:    users,
		requests: requests,
		locks:    locks,
	}
}

// Execute removes the requester's pending request to the decliner.
func (uc *DeclineRequestUseCase) Execute(ctx context.Context, cmd DeclineRequestCommand) error {
	if err := resolveUsers(ctx, uc.users, cmd.DeclinerID, cmd.RequesterID); err != nil {
		return err
	}

	unlock := uc.locks.Lock(cmd.DeclinerID, cmd.RequesterID)
	defer unlock()

	if err := uc.requests.Delete(ctx, cmd.RequesterID, cmd.DeclinerID); err != nil {
		return fmt.Errorf("failed to delete pending request: %w", err)
	}

	return nil
}
