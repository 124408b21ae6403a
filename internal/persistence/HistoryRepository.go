package persistence

import (
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"urlchecker/internal/models"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/structures"
)

// HistoryRepository serializes history as a JSON array, optionally zstd
// compressed, and keeps it in a snapshot store.
type HistoryRepository struct {
	store      interfaces.SnapshotStoreInterface
	compressor interfaces.CompressorInterface
	compress   bool
	logger     providers.Logger
}

func NewHistoryRepository(conf *structures.Config, store interfaces.SnapshotStoreInterface, compressor interfaces.CompressorInterface, logger providers.Logger) *HistoryRepository {
	return &HistoryRepository{
		store:      store,
		compressor: compressor,
		compress:   conf.Persistence.Compress,
		logger:     logger,
	}
}

func (r *HistoryRepository) Save(ctx context.Context, key string, entries []models.HistoryEntry) error {
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if r.compress {
		data, err = r.compressor.Compress(data)
		if err != nil {
			return fmt.Errorf("compress history: %w", err)
		}
	}
	return r.store.Put(ctx, key, data)
}

func (r *HistoryRepository) Load(ctx context.Context, key string) ([]models.HistoryEntry, bool, error) {
	data, found, err := r.store.Get(ctx, key)
	if err != nil || !found {
		return nil, found, err
	}

	var entries []models.HistoryEntry
	if raw, derr := r.compressor.Decompress(data); derr == nil {
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, true, nil
		}
	}

	// Snapshots written with compression disabled are plain JSON.
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, true, fmt.Errorf("decode history %q: %w", key, err)
	}
	if r.compress {
		r.logger.Warnf(providers.TypeStorage, "History %q is uncompressed, it will be compressed on next save", key)
	}
	return entries, true, nil
}
