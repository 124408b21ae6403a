package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// TimestampLayout is the ISO-8601 form entries are stored and served in,
// always UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HistoryEntry struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	Timestamp   time.Time   `json:"timestamp"`
	ThreatLevel ThreatLevel `json:"threatLevel"`
}

func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string      `json:"id"`
		URL         string      `json:"url"`
		Timestamp   string      `json:"timestamp"`
		ThreatLevel ThreatLevel `json:"threatLevel"`
	}{
		ID:          e.ID,
		URL:         e.URL,
		Timestamp:   e.Timestamp.UTC().Format(TimestampLayout),
		ThreatLevel: e.ThreatLevel,
	})
}
