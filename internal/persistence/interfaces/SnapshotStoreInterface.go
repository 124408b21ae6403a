package interfaces

import "context"

// SnapshotStoreInterface is an opaque key/value store for serialized snapshots.
type SnapshotStoreInterface interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}
