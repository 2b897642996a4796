package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memo keeps recently used entries of another store in memory.
// Writes go through to the wrapped store before they are memoized.
type Memo struct {
	next    Store
	entries *lru.Cache[string, []byte]
}

// NewMemo wraps next with an LRU of the given number of entries.
func NewMemo(next Store, size int) (*Memo, error) {
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating memo: %w", err)
	}

	return &Memo{next: next, entries: entries}, nil
}

func (m *Memo) Has(ctx context.Context, key string) (bool, error) {
	if m.entries.Contains(key) {
		return true, nil
	}

	return m.next.Has(ctx, key)
}

func (m *Memo) Get(ctx context.Context, key string) ([]byte, error) {
	if data, ok := m.entries.Get(key); ok {
		return append([]byte(nil), data...), nil
	}

	data, err := m.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	m.entries.Add(key, append([]byte(nil), data...))

	return data, nil
}

func (m *Memo) Put(ctx context.Context, key string, data []byte) error {
	if err := m.next.Put(ctx, key, data); err != nil {
		return err
	}

	m.entries.Add(key, append([]byte(nil), data...))

	return nil
}

// Len returns the number of memoized entries.
func (m *Memo) Len() int {
	return m.entries.Len()
}
