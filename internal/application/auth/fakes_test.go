package auth_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	authapp "github.com/mittr/linkup/internal/application/auth"
	"github.com/mittr/linkup/internal/domain/errs"
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
		if id != exclude {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeHasher prefixes instead of hashing so tests stay fast and readable.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// fakeIssuer issues sequence-numbered tokens and remembers which user each
// refresh token belongs to.
type fakeIssuer struct {
	mu      sync.Mutex
	seq     int
	refresh map[string]uuid.UUID
}

func newFakeIssuer() *fakeIssuer {
	return &fakeIssuer{refresh: make(map[string]uuid.UUID)}
}

func (i *fakeIssuer) IssueAccessToken(userID uuid.UUID) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.seq++
	return fmt.Sprintf("access-%s-%d", userID, i.seq), nil
}

func (i *fakeIssuer) IssueRefreshToken(userID uuid.UUID) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.seq++
	token := fmt.Sprintf("refresh-%s-%d", userID, i.seq)
	i.refresh[token] = userID
	return token, nil
}

func (i *fakeIssuer) ValidateRefreshToken(token string) (uuid.UUID, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	userID, ok := i.refresh[token]
	if !ok {
		return uuid.UUID(""), errors.New("unknown token")
	}
	return userID, nil
}

// fakeTokenStore is an in-memory RefreshTokenStore.
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[uuid.UUID]string)}
}

func (s *fakeTokenStore) Store(_ context.Context, userID uuid.UUID, token string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = token
	return nil
}

func (s *fakeTokenStore) Get(_ context.Context, userID uuid.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[userID]
	if !ok {
		return "", authapp.ErrTokenNotFound
	}
	return token, nil
}

func (s *fakeTokenStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}

// fixture wires the auth use cases around shared fakes.
type fixture struct {
	users  *fakeUserRepo
	issuer *fakeIssuer
	store  *fakeTokenStore

	register *authapp.RegisterUseCase
	login    *authapp.LoginUseCase
	refresh  *authapp.RefreshUseCase
	logout   *authapp.LogoutUseCase
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	issuer := newFakeIssuer()
	store := newFakeTokenStore()
	sessions := authapp.NewLoginSessionWriter(issuer, store, time.Hour)

	return &fixture{
		users:    users,
		issuer:   issuer,
		store:    store,
		register: authapp.NewRegisterUseCase(users, fakeHasher{}, issuer, sessions),
		login:    authapp.NewLoginUseCase(users, fakeHasher{}, sessions),
		refresh:  authapp.NewRefreshUseCase(issuer, store, time.Hour),
		logout:   authapp.NewLogoutUseCase(store),
	}
}
