package interfaces

import (
	"context"
	"urlchecker/internal/models"
)

// HistoryStoreInterface loads and saves the whole history under a fixed key.
// found is false when nothing was ever saved under key.
type HistoryStoreInterface interface {
	Load(ctx context.Context, key string) (entries []models.HistoryEntry, found bool, err error)
	Save(ctx context.Context, key string, entries []models.HistoryEntry) error
}

// HistoryWriterInterface accepts history snapshots for asynchronous saving.
// Submit must not block; callers invoke it while holding their state lock.
type HistoryWriterInterface interface {
	Submit(entries []models.HistoryEntry)
}
