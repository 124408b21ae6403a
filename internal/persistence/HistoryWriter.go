package persistence

import (
	"context"
	"go.uber.org/atomic"
	"sync"
	"time"
	"urlchecker/internal/models"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/structures"
)

const saveTimeout = 10 * time.Second

// HistoryWriter saves history snapshots in the background. Only the most
// recent submitted snapshot is kept pending, so writes never go out of order.
// A failed write stays pending until the next Flush.
type HistoryWriter struct {
	store   interfaces.HistoryStoreInterface
	key     string
	logger  providers.Logger
	metrics providers.MetricsProviderInterface

	mu         sync.Mutex
	pending    []models.HistoryEntry
	hasPending bool

	saveMu  sync.Mutex
	dirty   atomic.Bool
	running atomic.Bool
	wake    chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

func NewHistoryWriter(conf *structures.Config, store interfaces.HistoryStoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *HistoryWriter {
	return &HistoryWriter{
		store:   store,
		key:     conf.Persistence.Key,
		logger:  logger,
		metrics: metrics,
		wake:    make(chan struct{}, 1),
	}
}

// Submit queues entries for saving and returns immediately.
func (w *HistoryWriter) Submit(entries []models.HistoryEntry) {
	w.mu.Lock()
	w.pending = entries
	w.hasPending = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Start launches the background save loop. Without it, snapshots are only
// written by Flush.
func (w *HistoryWriter) Start() {
	if !w.running.CompareAndSwap(false, true) {
		return
	}
	w.stop = make(chan struct{})
	w.done = make(chan struct{})
	go w.loop(w.stop, w.done)
}

func (w *HistoryWriter) Stop() {
	if !w.running.CompareAndSwap(true, false) {
		return
	}
	close(w.stop)
	<-w.done
}

func (w *HistoryWriter) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case <-w.wake:
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			_ = w.Flush(ctx)
			cancel()
		}
	}
}

// Flush writes the pending snapshot, if any, and waits for it.
func (w *HistoryWriter) Flush(ctx context.Context) error {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	w.mu.Lock()
	entries, ok := w.pending, w.hasPending
	w.pending, w.hasPending = nil, false
	w.mu.Unlock()
	if !ok {
		return nil
	}

	start := time.Now()
	err := w.store.Save(ctx, w.key, entries)
	w.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		w.mu.Lock()
		if !w.hasPending {
			w.pending, w.hasPending = entries, true
		}
		w.mu.Unlock()
		w.dirty.Store(true)
		w.logger.Warnf(providers.TypeStorage, "Error while persisting history %q: %s", w.key, err)
		return err
	}

	w.dirty.Store(false)
	w.logger.Debugf(providers.TypeStorage, "Persisted %d history entries to %q", len(entries), w.key)
	return nil
}

// Dirty reports whether the last write failed and is waiting for a retry.
func (w *HistoryWriter) Dirty() bool {
	return w.dirty.Load()
}
