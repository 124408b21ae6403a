package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"sync"
	"time"
	"urlchecker/internal/events"
	"urlchecker/internal/models"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/scanner"
	"urlchecker/internal/structures"
)

var (
	ErrEmptyURL       = errors.New("url is empty")
	ErrScanInProgress = errors.New("a scan is already in progress")
	ErrNoResult       = errors.New("no scan result to copy")
	ErrClipboardWrite = errors.New("clipboard write failed")
	ErrEntryNotFound  = errors.New("history entry not found")
)

type ScanOrchestratorInterface interface {
	Scan(ctx context.Context, url string) (models.ScanResult, models.HistoryEntry, error)
	SelectHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.ScanResult, models.HistoryEntry, error)
	FindHistoryEntry(id string) (models.HistoryEntry, bool)
	SetURL(url string) error
	ClearHistory()
	LoadHistory(ctx context.Context) error
	SaveHistory()
	CopyResult(ctx context.Context) (string, error)
	State() models.ScanState
	History() []models.HistoryEntry
	HistorySize() int
	IsScanning() bool
}

// ScanOrchestrator owns the current result and the scan history. One scan may
// run at a time; a second Scan while one is in flight is rejected.
type ScanOrchestrator struct {
	classifier   scanner.ClassifierInterface
	store        interfaces.HistoryStoreInterface
	writer       interfaces.HistoryWriterInterface
	clipboard    providers.ClipboardProviderInterface
	publisher    events.PublisherInterface
	clock        providers.Clock
	logger       providers.Logger
	key          string
	latency      time.Duration
	copiedWindow time.Duration
	newID        func() string

	mu          sync.Mutex
	url         string
	status      models.ScanStatus
	result      *models.ScanResult
	history     *models.History
	copied      bool
	copiedTimer providers.Timer
	copyGen     uint64
}

func NewScanOrchestrator(
	conf *structures.Config,
	classifier scanner.ClassifierInterface,
	store interfaces.HistoryStoreInterface,
	writer interfaces.HistoryWriterInterface,
	clipboard providers.ClipboardProviderInterface,
	publisher events.PublisherInterface,
	clock providers.Clock,
	logger providers.Logger,
) ScanOrchestratorInterface {
	return &ScanOrchestrator{
		classifier:   classifier,
		store:        store,
		writer:       writer,
		clipboard:    clipboard,
		publisher:    publisher,
		clock:        clock,
		logger:       logger,
		key:          conf.Persistence.Key,
		latency:      conf.Scanner.Latency,
		copiedWindow: conf.Scanner.CopiedDisplay,
		newID:        uuid.NewString,
		status:       models.StatusIdle,
		history:      models.NewHistory(nil),
	}
}

// Scan waits the simulated latency, classifies url and records the outcome.
// Cancelling ctx does not abort a started scan.
func (o *ScanOrchestrator) Scan(ctx context.Context, url string) (models.ScanResult, models.HistoryEntry, error) {
	if url == "" {
		return models.ScanResult{}, models.HistoryEntry{}, ErrEmptyURL
	}

	o.mu.Lock()
	if o.status == models.StatusScanning {
		o.mu.Unlock()
		return models.ScanResult{}, models.HistoryEntry{}, ErrScanInProgress
	}
	o.url = url
	o.result = nil
	o.status = models.StatusScanning
	o.mu.Unlock()

	o.logger.Debugf(providers.TypeScan, "Scanning %s", url)
	<-o.clock.After(o.latency)

	result := o.classifier.Classify(url)
	entry := models.HistoryEntry{
		ID:          o.newID(),
		URL:         url,
		Timestamp:   o.clock.Now().UTC().Truncate(time.Millisecond),
		ThreatLevel: result.ThreatLevel,
	}

	o.mu.Lock()
	stored := result.Clone()
	o.result = &stored
	o.status = models.StatusIdle
	o.history.Prepend(entry)
	o.writer.Submit(o.history.Entries())
	o.mu.Unlock()

	o.logger.Infof(providers.TypeScan, "Scanned %s: %s, %d threats", url, result.ThreatLevel, len(result.Threats))

	if err := o.publisher.PublishScanCompleted(context.WithoutCancel(ctx), events.NewScanCompletedEvent(entry)); err != nil {
		o.logger.Warnf(providers.TypeScan, "Failed to publish scan event for %s: %s", entry.ID, err)
	}

	return result.Clone(), entry, nil
}

// SelectHistoryEntry rescans the entry's URL. The old entry stays in history.
func (o *ScanOrchestrator) SelectHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.ScanResult, models.HistoryEntry, error) {
	return o.Scan(ctx, entry.URL)
}

func (o *ScanOrchestrator) FindHistoryEntry(id string) (models.HistoryEntry, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Find(id)
}

// SetURL replaces the current URL. A changed URL drops the result shown for
// the previous one.
func (o *ScanOrchestrator) SetURL(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == models.StatusScanning {
		return ErrScanInProgress
	}
	if url != o.url {
		o.url = url
		o.result = nil
	}
	return nil
}

func (o *ScanOrchestrator) ClearHistory() {
	o.mu.Lock()
	o.history.Clear()
	o.writer.Submit(o.history.Entries())
	o.mu.Unlock()

	o.logger.Infof(providers.TypeScan, "History cleared")
}

// LoadHistory replaces the in-memory history with the persisted one.
func (o *ScanOrchestrator) LoadHistory(ctx context.Context) error {
	entries, found, err := o.store.Load(ctx, o.key)
	if err != nil {
		return fmt.Errorf("load history %q: %w", o.key, err)
	}
	if !found {
		o.logger.Infof(providers.TypeStorage, "No saved history under %q", o.key)
	}

	valid := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if !e.ThreatLevel.Valid() {
			o.logger.Warnf(providers.TypeStorage, "Dropping history entry %s with unknown threat level %q", e.ID, e.ThreatLevel)
			continue
		}
		valid = append(valid, e)
	}
	if len(valid) > models.HistoryCapacity {
		o.logger.Warnf(providers.TypeStorage, "Saved history has %d entries, keeping newest %d", len(valid), models.HistoryCapacity)
	}

	o.mu.Lock()
	o.history = models.NewHistory(valid)
	n := o.history.Len()
	o.mu.Unlock()

	o.logger.Infof(providers.TypeStorage, "Loaded %d history entries", n)
	return nil
}

// SaveHistory hands the full history to the writer without waiting.
// Submit runs under mu so snapshots reach the writer in mutation order.
func (o *ScanOrchestrator) SaveHistory() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.writer.Submit(o.history.Entries())
}

// CopyResult writes the formatted current result to the clipboard and raises
// the copied flag for the copied window.
func (o *ScanOrchestrator) CopyResult(ctx context.Context) (string, error) {
	o.mu.Lock()
	if o.result == nil {
		o.mu.Unlock()
		return "", ErrNoResult
	}
	text := scanner.FormatResultText(*o.result, o.url, o.clock.Now())
	o.mu.Unlock()

	if err := o.clipboard.WriteText(ctx, text); err != nil {
		o.logger.Warnf(providers.TypeApp, "Failed to copy: %s", err)
		return "", fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.copyGen++
	gen := o.copyGen
	o.copied = true
	if o.copiedTimer != nil {
		o.copiedTimer.Stop()
	}
	o.copiedTimer = o.clock.AfterFunc(o.copiedWindow, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.copyGen == gen {
			o.copied = false
			o.copiedTimer = nil
		}
	})
	return text, nil
}

func (o *ScanOrchestrator) State() models.ScanState {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := models.ScanState{
		URL:      o.url,
		Status:   o.status,
		Scanning: o.status == models.StatusScanning,
		History:  o.history.Entries(),
		Copied:   o.copied,
	}
	if o.result != nil {
		r := o.result.Clone()
		state.Result = &r
	}
	return state
}

func (o *ScanOrchestrator) History() []models.HistoryEntry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Entries()
}

func (o *ScanOrchestrator) HistorySize() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Len()
}

func (o *ScanOrchestrator) IsScanning() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status == models.StatusScanning
}
