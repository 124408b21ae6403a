package testutil

import (
	"context"
	"errors"
	"sync"
	"time"
	"urlchecker/internal/events"
	"urlchecker/internal/models"
	"urlchecker/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                   sync.Mutex
	Scans                map[string]int
	Rejected             int
	HistoryEntries       int
	PersistenceObserved  int
	RequestsObserved     int
	CacheHits, CacheMiss int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestsObserved++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMiss++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceObserved++
}
func (m *MockMetrics) IncScansTotal(level string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Scans == nil {
		m.Scans = make(map[string]int)
	}
	m.Scans[level]++
}
func (m *MockMetrics) IncScansRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected++
}
func (m *MockMetrics) SetHistoryEntries(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistoryEntries = count
}

// MockClipboard implements providers.ClipboardProviderInterface.
type MockClipboard struct {
	mu     sync.Mutex
	Text   string
	Writes int
	Err    error
}

func (m *MockClipboard) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

func (m *MockClipboard) ReadText() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Text, m.Text != ""
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockHistoryStore implements interfaces.HistoryStoreInterface in memory.
type MockHistoryStore struct {
	mu        sync.Mutex
	Data      map[string][]models.HistoryEntry
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{Data: make(map[string][]models.HistoryEntry)}
}

func (m *MockHistoryStore) Load(_ context.Context, key string) ([]models.HistoryEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}
	entries, ok := m.Data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]models.HistoryEntry, len(entries))
	copy(out, entries)
	return out, true, nil
}

func (m *MockHistoryStore) Save(_ context.Context, key string, entries []models.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	out := make([]models.HistoryEntry, len(entries))
	copy(out, entries)
	m.Data[key] = out
	return nil
}

// Saved returns the entries last saved under key.
func (m *MockHistoryStore) Saved(key string) []models.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Data[key]
}

// SyncWriter implements interfaces.HistoryWriterInterface by saving inline.
type SyncWriter struct {
	Store *MockHistoryStore
	Key   string

	mu        sync.Mutex
	Submitted [][]models.HistoryEntry
}

func (w *SyncWriter) Submit(entries []models.HistoryEntry) {
	w.mu.Lock()
	w.Submitted = append(w.Submitted, entries)
	w.mu.Unlock()
	if w.Store != nil {
		_ = w.Store.Save(context.Background(), w.Key, entries)
	}
}

func (w *SyncWriter) Submissions() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Submitted)
}

// MockPublisher implements events.PublisherInterface.
type MockPublisher struct {
	mu     sync.Mutex
	Events []events.ScanCompletedEvent
	Err    error
	Closed bool
}

func (m *MockPublisher) PublishScanCompleted(_ context.Context, ev events.ScanCompletedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, ev)
	return nil
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockPublisher) Published() []events.ScanCompletedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.ScanCompletedEvent, len(m.Events))
	copy(out, m.Events)
	return out
}

var ErrMock = errors.New("mock failure")
