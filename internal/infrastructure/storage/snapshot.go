// internal/infrastructure/storage/snapshot.go
package storage

import "context"

// Snapshot is a key/value blob store used to persist whole-collection
// JSON snapshots. Load reports found=false when the key has never been
// written; callers treat that the same as a decode failure and fall back
// to their seed data.
type Snapshot interface {
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
