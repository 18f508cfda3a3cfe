package user_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/mittr/linkup/internal/application/user"
	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/friendship"
	userdomain "github.com/mittr/linkup/internal/domain/user"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// fakeUserRepo is an in-memory user.Repository covering the read paths.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*userdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*userdomain.User)}
}

func (r *fakeUserRepo) add(t *testing.T, username string) *userdomain.User {
	t.Helper()
	u, err := userdomain.NewUser(username, username+"@example.com", "hash")
	require.NoError(t, err)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID()] = u
	return u
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) ListExcept(_ context.Context, exclude uuid.UUID) ([]*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*userdomain.User
	for id, u := range r.users {
		if id == exclude {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username() < out[j].Username() })
	return out, nil
}

// fakeFriendshipRepo is an in-memory friendship.Repository.
type fakeFriendshipRepo struct {
	edges []friendship.Friendship
}

func (r *fakeFriendshipRepo) addEdge(t *testing.T, a, b uuid.UUID) {
	t.Helper()
	edge, err := friendship.NewFriendship(a, b)
	require.NoError(t, err)
	r.edges = append(r.edges, edge)
}

func (r *fakeFriendshipRepo) Upsert(_ context.Context, f friendship.Friendship) error {
	r.edges = append(r.edges, f)
	return nil
}

func (r *fakeFriendshipRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (r *fakeFriendshipRepo) Exists(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeFriendshipRepo) ListByUser(_ context.Context, id uuid.UUID) ([]friendship.Friendship, error) {
	var out []friendship.Friendship
	for _, edge := range r.edges {
		if edge.UserA == id || edge.UserB == id {
			out = append(out, edge)
		}
	}
	return out, nil
}

func TestListUsers_ExcludesCaller(t *testing.T) {
	users := newFakeUserRepo()
	alice := users.add(t, "alice")
	bob := users.add(t, "bob")
	carol := users.add(t, "carol")

	uc := userapp.NewListUsersUseCase(users)

	summaries, err := uc.Execute(t.Context(), userapp.ListUsersQuery{ExcludeID: alice.ID()})

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, bob.ID(), summaries[0].ID)
	assert.Equal(t, "bob", summaries[0].Username)
	assert.Equal(t, carol.ID(), summaries[1].ID)
}

func TestListUsers_EmptyDirectory(t *testing.T) {
	users := newFakeUserRepo()
	uc := userapp.NewListUsersUseCase(users)

	summaries, err := uc.Execute(t.Context(), userapp.ListUsersQuery{ExcludeID: uuid.NewUUID()})

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGetUser_WithFriends(t *testing.T) {
	users := newFakeUserRepo()
	friendships := &fakeFriendshipRepo{}
	alice := users.add(t, "alice")
	bob := users.add(t, "bob")
	friendships.addEdge(t, alice.ID(), bob.ID())

	uc := userapp.NewGetUserUseCase(users, friendships)

	detail, err := uc.Execute(t.Context(), userapp.GetUserQuery{UserID: alice.ID()})

	require.NoError(t, err)
	assert.Equal(t, alice.ID(), detail.ID)
	assert.Equal(t, "alice", detail.Username)
	assert.Equal(t, "alice@example.com", detail.Email)
	require.Len(t, detail.Friends, 1)
	assert.Equal(t, bob.ID(), detail.Friends[0])
}

func TestGetUser_NoFriends(t *testing.T) {
	users := newFakeUserRepo()
	alice := users.add(t, "alice")

	uc := userapp.NewGetUserUseCase(users, &fakeFriendshipRepo{})

	detail, err := uc.Execute(t.Context(), userapp.GetUserQuery{UserID: alice.ID()})

	require.NoError(t, err)
	assert.NotNil(t, detail.Friends)
	assert.Empty(t, detail.Friends)
}

func TestGetUser_NotFound(t *testing.T) {
	users := newFakeUserRepo()
	uc := userapp.NewGetUserUseCase(users, &fakeFriendshipRepo{})

	_, err := uc.Execute(t.Context(), userapp.GetUserQuery{UserID: uuid.NewUUID()})

	require.ErrorIs(t, err, userapp.ErrUserNotFound)
}
