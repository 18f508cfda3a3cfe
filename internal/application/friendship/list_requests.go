package friendship

import (
	"context"
	"fmt"

	"github.com/mittr/linkup/internal/domain/friendship"
	"github.com/mittr/linkup/internal/domain/user"
)

// ListReceivedRequestsUseCase returns pending requests addressed to a user.
type ListReceivedRequestsUseCase struct {
	users    user.Repository
	requests friendship.RequestRepository
}

// NewListReceivedRequestsUseCase creates the use case.
func NewListReceivedRequestsUseCase(
	users user.Repository,
	requests friendship.RequestRepository,
) *ListReceivedRequestsUseCase {
	return &ListReceivedRequestsUseCase{
		users:    users,
		requests: requests,
	}
}

// Execute lists received requests with the sender resolved. Requests from
// deleted users are skipped.
func (uc *ListReceivedRequestsUseCase) Execute(
	ctx context.Context,
	query ListReceivedRequestsQuery,
) ([]ReceivedRequestView, error) {
	if err := resolveUsers(ctx, uc.users, query.UserID); err != nil {
		return nil, err
	}

	pending, err := uc.requests.ListByReceiver(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}

	views := make([]ReceivedRequestView, 0, len(pending))
	for _, req := range pending {
		from, ok, viewErr := viewOf(ctx, uc.users, req.From)
		if viewErr != nil {
			return nil, viewErr
		}
		if !ok {
			continue
		}
		views = append(views, ReceivedRequestView{From: from, SentAt: req.SentAt})
	}

	return views, nil
}

// ListSentRequestsUseCase returns pending requests a user has issued.
type ListSentRequestsUseCase struct {
	users    user.Repository
	requests friendship.RequestRepository
}

// NewListSentRequestsUseCase creates the use case.
func NewListSentRequestsUseCase(
	users user.Repository,
	requests friendship.RequestRepository,
) *ListSentRequestsUseCase {
	return &ListSentRequestsUseCase{
		users:    users,
		requests: requests,
	}
}

// Execute lists sent requests with the receiver resolved. Requests to
// deleted users are skipped.
func (uc *ListSentRequestsUseCase) Execute(
	ctx context.Context,
	query ListSentRequestsQuery,
) ([]SentRequestView, error) {
	if err := resolveUsers(ctx, uc.users, query.UserID); err != nil {
		return nil, err
	}

	pending, err := uc.requests.ListBySender(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}

	views := make([]SentRequestView, 0, len(pending))
	for _, req := range pending {
		to, ok, viewErr := viewOf(ctx, uc.users, req.To)
		if viewErr != nil {
			return nil, viewErr
		}
		if !ok {
			continue
		}
		views = append(views, SentRequestView{To: to, SentAt: req.SentAt})
	}

	return views, nil
}
