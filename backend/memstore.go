package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/godlixe/skiplist"
)

type memEntry struct {
	key   string
	value string
}

func cmpMemEntry(a, b memEntry) int {
	return strings.Compare(a.key, b.key)
}

type memStore struct {
	mu    sync.RWMutex
	store skiplist.SkipList[memEntry]
}

// NewMemStore creates an in-memory Backend. Entries live only as long as the
// process; ListKeys returns keys in lexicographic order. Useful as a default
// for tests and for callers that do not need durability.
func NewMemStore() Backend {
	return &memStore{
		store: skiplist.NewDefault(cmpMemEntry),
	}
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.store.Search(memEntry{key: key})
	if errors.Is(err, skiplist.ErrTargetNotFound) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: search %s: %v", ErrBackend, key, err)
	}
	return entry.value, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Set(memEntry{key: key, value: value})
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Delete(memEntry{key: key})
	return nil
}

func (s *memStore) ListKeys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, s.store.Len())
	for it := s.store.Iterate(); it.Valid(); it.Next() {
		keys = append(keys, it.Data().key)
	}
	return keys, nil
}
