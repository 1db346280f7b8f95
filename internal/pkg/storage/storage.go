package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value. A missing key is
// the expected logged-out state, not a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the local persistence used for the bearer token and the cached
// driver profile document.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
