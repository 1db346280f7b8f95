package storage

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/plutoride/vendor-app/internal/pkg/database"
)

const keyPrefix = "vendorapp:"

// RedisStore keeps the token and profile document in Redis. Values carry no
// TTL: the session lives until an explicit logout.
type RedisStore struct {
	client *database.RedisClient
}

// NewRedisStore creates a Redis-backed store over an existing client
func NewRedisStore(client *database.RedisClient) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves a value by key
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, keyPrefix+key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", &apperr.StorageError{Op: "get", Err: err}
	}
	return value, nil
}

// Set stores a key-value pair
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0); err != nil {
		return &apperr.StorageError{Op: "set", Err: err}
	}
	return nil
}

// Delete removes a key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Delete(ctx, keyPrefix+key); err != nil {
		return &apperr.StorageError{Op: "delete", Err: err}
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
