// internal/infrastructure/storage/redis/snapshot.go
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// SnapshotStore persists collection snapshots as JSON blobs under fixed
// keys. Each collection serializes to a single value; there is no
// per-record keying.
type SnapshotStore struct {
	client *redis.Client
}

// NewSnapshotStore creates a snapshot store backed by the given client
func NewSnapshotStore(client *redis.Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

// Load retrieves a snapshot by key
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save stores a snapshot under key. Snapshots never expire.
func (s *SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}

// Delete removes a snapshot by key
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
