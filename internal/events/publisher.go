package events

import (
	"context"
	"time"
	"urlchecker/internal/models"
	"urlchecker/internal/providers"
	"urlchecker/internal/structures"
)

// ScanCompletedEvent is published once per finished scan.
type ScanCompletedEvent struct {
	ID          string             `json:"id"`
	URL         string             `json:"url"`
	ThreatLevel models.ThreatLevel `json:"threatLevel"`
	Timestamp   time.Time          `json:"timestamp"`
}

func NewScanCompletedEvent(entry models.HistoryEntry) ScanCompletedEvent {
	return ScanCompletedEvent{
		ID:          entry.ID,
		URL:         entry.URL,
		ThreatLevel: entry.ThreatLevel,
		Timestamp:   entry.Timestamp,
	}
}

type PublisherInterface interface {
	PublishScanCompleted(ctx context.Context, ev ScanCompletedEvent) error
	Close() error
}

func NewPublisher(conf *structures.Config, logger providers.Logger) (PublisherInterface, error) {
	if !conf.Events.Enabled {
		logger.Infof(providers.TypeApp, "Scan events disabled")
		return &noopPublisher{}, nil
	}
	p, err := NewAmqpPublisher(conf.Events.Url, conf.Events.Queue)
	if err != nil {
		return nil, err
	}
	logger.Infof(providers.TypeApp, "Publishing scan events to queue %s", conf.Events.Queue)
	return p, nil
}

type noopPublisher struct{}

func (n *noopPublisher) PublishScanCompleted(_ context.Context, _ ScanCompletedEvent) error {
	return nil
}
func (n *noopPublisher) Close() error { return nil }
