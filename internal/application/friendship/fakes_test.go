package friendship_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mittr/linkup/internal/domain/errs"
	"github.com/mittr/linkup/internal/domain/friendship"
	userdomain "github.com/mittr/linkup/internal/domain/user"
	"github.com/mittr/linkup/internal/domain/uuid"
)

// fakeUserRepo is an in-memory user.Repository.
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

func (r *fakeUserRepo) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
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
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email() == email {
			return true, nil
		}
	}
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

// fakeRequestRepo is an in-memory friendship.RequestRepository. Slice order
// doubles as sent_at order.
type fakeRequestRepo struct {
	mu       sync.Mutex
	requests []friendship.FriendRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{}
}

func (r *fakeRequestRepo) Insert(_ context.Context, req friendship.FriendRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.requests {
		if existing.From == req.From && existing.To == req.To {
			return errs.ErrAlreadyExists
		}
	}
	r.requests = append(r.requests, req)
	return nil
}

func (r *fakeRequestRepo) Delete(_ context.Context, from, to uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.requests[:0]
	for _, req := range r.requests {
		if req.From == from && req.To == to {
			continue
		}
		kept = append(kept, req)
	}
	r.requests = kept
	return nil
}

func (r *fakeRequestRepo) Exists(_ context.Context, from, to uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.From == from && req.To == to {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) ListByReceiver(_ context.Context, to uuid.UUID) ([]friendship.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []friendship.FriendRequest
	for _, req := range r.requests {
		if req.To == to {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListBySender(_ context.Context, from uuid.UUID) ([]friendship.FriendRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []friendship.FriendRequest
	for _, req := range r.requests {
		if req.From == from {
			out = append(out, req)
		}
	}
	return out, nil
}

// fakeFriendshipRepo is an in-memory friendship.Repository.
type fakeFriendshipRepo struct {
	mu    sync.Mutex
	edges []friendship.Friendship
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{}
}

func (r *fakeFriendshipRepo) Upsert(_ context.Context, f friendship.Friendship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, edge := range r.edges {
		if edge.UserA == f.UserA && edge.UserB == f.UserB {
			return nil
		}
	}
	r.edges = append(r.edges, f)
	return nil
}

func (r *fakeFriendshipRepo) Delete(_ context.Context, a, b uuid.UUID) error {
	first, second := friendship.SortPair(a, b)
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.edges[:0]
	for _, edge := range r.edges {
		if edge.UserA == first && edge.UserB == second {
			continue
		}
		kept = append(kept, edge)
	}
	r.edges = kept
	return nil
}

func (r *fakeFriendshipRepo) Exists(_ context.Context, a, b uuid.UUID) (bool, error) {
	first, second := friendship.SortPair(a, b)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, edge := range r.edges {
		if edge.UserA == first && edge.UserB == second {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFriendshipRepo) ListByUser(_ context.Context, id uuid.UUID) ([]friendship.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []friendship.Friendship
	for _, edge := range r.edges {
		if edge.UserA == id || edge.UserB == id {
			out = append(out, edge)
		}
	}
	return out, nil
}
