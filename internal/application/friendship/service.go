package friendship

import "context"

// Service aggregates the friendship use cases behind one surface for the
// HTTP layer.
type Service struct {
	send    *SendRequestUseCase
	accept  *AcceptRequestUseCase
	decline *DeclineRequestUseCase
	remove  *RemoveFriendUseCase

	listFriends  *ListFriendsUseCase
	listReceived *ListReceivedRequestsUseCase
	listSent     *ListSentRequestsUseCase
}

// NewService creates the service from the individual use cases.
func NewService(
	send *SendRequestUseCase,
	accept *AcceptRequestUseCase,
	decline *DeclineRequestUseCase,
	remove *RemoveFriendUseCase,
	listFriends *ListFriendsUseCase,
	listReceived *ListReceivedRequestsUseCase,
	listSent *ListSentRequestsUseCase,
) *Service {
	return &Service{
		send:         send,
		accept:       accept,
		decline:      decline,
		remove:       remove,
		listFriends:  listFriends,
		listReceived: listReceived,
		listSent:     listSent,
	}
}

// SendRequest sends a friend request.
func (s *Service) SendRequest(ctx context.Context, cmd SendRequestCommand) error {
	return s.send.Execute(ctx, cmd)
}

// AcceptRequest accepts a pending friend request.
func (s *Service) AcceptRequest(ctx context.Context, cmd AcceptRequestCommand) error {
	return s.accept.Execute(ctx, cmd)
}

// DeclineRequest declines a pending friend request.
func (s *Service) DeclineRequest(ctx context.Context, cmd DeclineRequestCommand) error {
	return s.decline.Execute(ctx, cmd)
}

// RemoveFriend removes an existing friendship.
func (s *Service) RemoveFriend(ctx context.Context, cmd RemoveFriendCommand) error {
	return s.remove.Execute(ctx, cmd)
}

// ListFriends returns the user's friends.
func (s *Service) ListFriends(ctx context.Context, query ListFriendsQuery) ([]UserView, error) {
	return s.listFriends.Execute(ctx, query)
}

// ListReceivedRequests returns pending requests addressed to the user.
func (s *Service) ListReceivedRequests(
	ctx context.Context,
	query ListReceivedRequestsQuery,
) ([]ReceivedRequestView, error) {
	return s.listReceived.Execute(ctx, query)
}

// ListSentRequests returns pending requests issued by the user.
func (s *Service) ListSentRequests(
	ctx context.Context,
	query ListSentRequestsQuery,
) ([]SentRequestView, error) {
	return s.listSent.Execute(ctx, query)
}
