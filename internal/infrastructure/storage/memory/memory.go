// internal/infrastructure/storage/memory/memory.go
package memory

import (
	"context"
	"sync"
)

// Store is an in-process snapshot store. It backs tests and the degraded
// "memory" storage backend where nothing survives a restart.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStore creates an empty in-memory snapshot store
func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Load retrieves a snapshot by key
func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers can't mutate the stored blob
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Save stores a snapshot under key
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob := make([]byte, len(data))
	copy(blob, data)
	s.blobs[key] = blob
	return nil
}

// Delete removes a snapshot by key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}
