package friendship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	friendapp "github.com/mittr/linkup/internal/application/friendship"
	"github.com/mittr/linkup/internal/domain/uuid"
)

func TestAcceptRequest_Success(t *testing.T) {
	f := newFixture()
	alice := f.users.add(t, "alice")
	bob := f.users.add(t, "bob")

	require.NoError(t, f.send.Execute(t.Context(), friendapp.SendRequestCommand{
		FromID: alice.ID(), ToID: bob.ID(),
	}))

	err := f.accept.Execute(t.Context(), friendapp.AcceptRequestCommand{
		AccepterID:  bob.ID(),
		RequesterID: alice.ID(),
	})
	require.NoError(t, err)

	// Both users see each other as friends.
	aliceFriends, err := f.listFriends.Execute(t.Context(), friendapp.ListFriendsQuery{UserID: alice.ID()})
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID(), aliceFriends[0].ID)

	bobFriends, err := f.listFriends.Execute(t.Context(), friendapp.ListFriendsQuery{UserID: bob.ID()})
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID(), bobFriends[0].ID)

	// The pending request is gone from both views.
	received, err := f.listReceived.Execute(t.Context(), friendapp.ListReceivedRequestsQuery{UserID: bob.ID()})
	require.NoError(t, err)
	assert.Empty(t, received)

	sent, err := f.listSent.Execute(t.Context(), friendapp.ListSentRequestsQuery{UserID: alice.ID()})
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestAcceptRequest_WithoutPendingRequest(t *testing.T) {
	f := newFixture()
	alice := f.users.add(t, "alice")
	bob := f.users.add(t, "bob")

	// The legacy behavior: accept does not verify a request was pending.
	err := f.accept.Execute(t.Context(), friendapp.AcceptRequestCommand{
		AccepterID:  bob.ID(),
		RequesterID: alice.ID(),
	})
	require.NoError(t, err)

	friends, err := f.listFriends.Execute(t.Context(), friendapp.ListFriendsQuery{UserID: alice.ID()})
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestAcceptRequest_Idempotent(t *testing.T) {
	f := newFixture()
	alice := f.users.add(t, "alice")
	bob := f.users.add(t, "bob")

	cmd := friendapp.AcceptRequestCommand{AccepterID: bob.ID(), RequesterID: alice.ID()}
	require.NoError(t, f.accept.Execute(t.Context(), cmd))
	require.NoError(t, f.accept.Execute(t.Context(), cmd))

	// Still a single friendship edge.
	friends, err := f.listFriends.Execute(t.Context(), friendapp.ListFriendsQuery{UserID: alice.ID()})
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestAcceptRequest_UnknownRequester(t *testing.T) {
	f := newFixture()
	bob := f.users.add(t, "bob")

	err := f.accept.Execute(t.Context(), friendapp.AcceptRequestCommand{
		AccepterID:  bob.ID(),
		RequesterID: uuid.NewUUID(),
	})

	require.ErrorIs(t, err, friendapp.ErrUserNotFound)
}
