package friendship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	friendapp "github.com/mittr/linkup/internal/application/friendship"
	"github.com/mittr/linkup/internal/domain/uuid"
)

func TestDeclineRequest_Success(t *testing.T) {
	f := newFixture()
	alice := f.users.add(t, "alice")
	bob := f.users.add(t, "bob")

	require.NoError(t, f.send.Execute(t.Context(), friendapp.SendRequestCommand{
		FromID: alice.ID(), ToID: bob.ID(),
	}))

	err := f.decline.Execute(t.Context(), friendapp.DeclineRequestCommand{
		DeclinerID:  bob.ID(),
		RequesterID: alice.ID(),
	})
	require.NoError(t, err)

	// Request is gone and no friendship was created.
	received, err := f.listReceived.Execute(t.Context(), friendapp.ListReceivedRequestsQuery{UserID: bob.ID()})
	require.NoError(t, err)
	assert.Empty(t, received)

	sent, err := f.listSent.Execute(t.Context(), friendapp.ListSentRequestsQuery{UserID: alice.ID()})
	require.NoError(t, err)
	assert.Empty(t, sent)

	friends, err := f.listFriends.Execute(t.Context(), friendapp.ListFriendsQuery{UserID: bob.ID()})
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestDeclineRequest_SendDeclineRoundTrip(t *testing.T) {
	f := newFixture()
	alice := f.users.add(t, "alice")
	bob := f.users.add(t, "bob")

	// After a decline the sender may try again.
	require.NoError(t, f.send.Execute(t.Context(), friendapp.SendRequestCommand{
		FromID: alice.ID(), ToID: bob.ID(),
	}))
	require.NoError(t, f.decline.Execute(t.Context(), friendapp.DeclineRequestCommand{
		DeclinerID: bob.ID(), RequesterID: alice.ID(),
	}))
	require.NoError(t, f.send.Execute(t.Context(), friendapp.SendRequestCommand{
		FromID: alice.ID(), ToID: bob.ID(),
	}))

	received, err := f.listReceived.Execute(t.Context(), friendapp.ListReceivedRequestsQuery{UserID: bob.ID()})
	require.NoError(t, err)
	assert.Len(t, received, 1)
}

func TestDeclineRequest_NoPendingRequest(t *testing.T) {
	f := newFixture()
	alice := f.users.add(t, "alice")
	bob := f.users.add(t, "bob")

	// Declining something that is not there is a silent no-op.
	err := f.decline.Execute(t.Context(), friendapp.DeclineRequestCommand{
		DeclinerID:  bob.ID(),
		RequesterID: alice.ID(),
	})

	require.NoError(t, err)
}

func TestDeclineRequest_UnknownUser(t *testing.T) {
	f := newFixture()
	bob := f.users.add(t, "bob")

	err := f.decline.Execute(t.Context(), friendapp.DeclineRequestCommand{
		DeclinerID:  bob.ID(),
		RequesterID: uuid.NewUUID(),
	})

	require.ErrorIs(t, err, friendapp.ErrUserNotFound)
}
