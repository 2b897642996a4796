package cache

import (
	"context"
	"errors"
)

// Store persists cache entries by key.
type Store interface {
	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

var (
	// ErrNotFound is returned by Get for a key with no entry.
	ErrNotFound = errors.New("cache entry not found")
	// ErrStorage wraps failures of the underlying file system or object store.
	ErrStorage = errors.New("cache storage failure")
)
