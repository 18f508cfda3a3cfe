package friendship

import (
	"context"
	"fmt"

	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/user"
)

// RemoveFriendUseCase dissolves a friendship. Either side may initiate;
// removing a non-friend is a no-op success.
type RemoveFriendUseCase struct {
	users       user.Repository
	friendships friendship.Repository
	locks       *PairLock
}

// NewRemoveFriendUseCase creates the use case.
func NewRemoveFriendUseCase(
	users user.Repository,
	friendships friendship.Repository,
	locks *PairLock,
) *RemoveFriendUseCase {
	return &RemoveFriendUseCase{
		users:       users,
		friendships: friendships,
		locks:       locks,
	}
}

// Execute deletes the friendship edge for the pair.
func (uc *RemoveFriendUseCase) Execute(ctx context.Context, cmd RemoveFriendCommand) error {
	if err := resolveUsers(ctx, uc.users, cmd.SelfID, cmd.OtherID); err != nil {
		return err
	}

	unlock := uc.locks.Lock(cmd.SelfID, cmd.OtherID)
	defer unlock()

	if err := uc.friendships.Delete(ctx, cmd.SelfID, cmd.OtherID); err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}

	return nil
}
