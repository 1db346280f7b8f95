package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
)

// FileStore persists each key as a file under a root directory. Writes go
// through a temp file and rename so a crash never leaves a torn value.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, &apperr.StorageError{Op: "init", Err: fmt.Errorf("failed to create storage directory: %w", err)}
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a value by key
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", &apperr.StorageError{Op: "get", Err: err}
	}
	return string(data), nil
}

// Set stores a key-value pair
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return &apperr.StorageError{Op: "set", Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		return &apperr.StorageError{Op: "set", Err: err}
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return &apperr.StorageError{Op: "delete", Err: err}
	}
	return nil
}

// Close is a no-op for the file store
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
