package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore keeps entries as files. The key is the file path.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Has reports whether a file exists at key.
func (s *FileStore) Has(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(key)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("%w: checking %s: %w", ErrStorage, key, err)
}

// Get reads the file at key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}

		return nil, fmt.Errorf("%w: reading %s: %w", ErrStorage, key, err)
	}

	return data, nil
}

// Put writes data to the file at key, creating parent directories as needed
// and replacing any previous content.
func (s *FileStore) Put(_ context.Context, key string, data []byte) error {
	if dir := filepath.Dir(key); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w: creating directory %s: %w", ErrStorage, dir, err)
		}
	}

	if err := os.WriteFile(key, data, filePerm); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrStorage, key, err)
	}

	return nil
}
