package friendship_test

import (
	friendapp "github.com/mittr/linkup/internal/application/friendship"
)

// fixture wires every friendship use case around shared in-memory fakes.
type fixture struct {
	users       *fakeUserRepo
	requests    *fakeRequestRepo
	friendships *fakeFriendshipRepo

	send    *friendapp.SendRequestUseCase
	accept  *friendapp.AcceptRequestUseCase
	decline *friendapp.DeclineRequestUseCase
	remove  *friendapp.RemoveFriendUseCase

	listFriends  *friendapp.ListFriendsUseCase
	listReceived *friendapp.ListReceivedRequestsUseCase
	listSent     *friendapp.ListSentRequestsUseCase
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	requests := newFakeRequestRepo()
	friendships := newFakeFriendshipRepo()
	locks := friendapp.NewPairLock()

	return &fixture{
		users:        users,
		requests:     requests,
		friendships:  friendships,
		send:         friendapp.NewSendRequestUseCase(users, requests, friendships, locks),
		accept:       friendapp.NewAcceptRequestUseCase(users, requests, friendships, locks),
		decline:      friendapp.NewDeclineRequestUseCase(users, requests, locks),
		remove:       friendapp.NewRemoveFriendUseCase(users, friendships, locks),
		listFriends:  friendapp.NewListFriendsUseCase(users, friendships),
		listReceived: friendapp.NewListReceivedRequestsUseCase(users, requests),
		listSent:     friendapp.NewListSentRequestsUseCase(users, requests),
	}
}
