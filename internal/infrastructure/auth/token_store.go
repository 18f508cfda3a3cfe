package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	authapp "github.com/mittr/linkup/internal/application/auth"
	"github.com/mittr/linkup/internal/domain/uuid"
)

const defaultKeyPrefix = "auth:refresh_token:"

// TokenStore keeps the currently valid refresh token per user in Redis.
// Rotation overwrites the key; logout deletes it; the TTL matches the
// token's own lifetime so abandoned sessions expire on their own.
type TokenStore struct {
	client    *redis.Client
	keyPrefix string
}

// TokenStoreConfig contains configuration for TokenStore.
type TokenStoreConfig struct {
	Client    *redis.Client
	KeyPrefix string
}

// NewTokenStore creates a new Redis-based token store.
func NewTokenStore(cfg TokenStoreConfig) *TokenStore {
	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &TokenStore{
		client:    cfg.Client,
		keyPrefix: keyPrefix,
	}
}

func (s *TokenStore) tokenKey(userID uuid.UUID) string {
	return s.keyPrefix + userID.String()
}

// Store saves a refresh token for a user with the given TTL.
func (s *TokenStore) Store(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if userID.IsZero() {
		return errors.New("userID is required")
	}
	if token == "" {
		return errors.New("token is required")
	}

	if err := s.client.Set(ctx, s.tokenKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// Get retrieves the stored refresh token for a user.
func (s *TokenStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	if userID.IsZero() {
		return "", errors.New("userID is required")
	}

	token, err := s.client.Get(ctx, s.tokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", authapp.ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to get refresh token: %w", err)
	}

	return token, nil
}

// Delete removes a user's refresh token (logout).
func (s *TokenStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if userID.IsZero() {
		return errors.New("userID is required")
	}

	if err := s.client.Del(ctx, s.tokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	return nil
}
