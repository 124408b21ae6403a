package models

type ScanStatus string

const (
	StatusIdle     ScanStatus = "idle"
	StatusScanning ScanStatus = "scanning"
)

// ScanState is everything the presentation layer renders.
type ScanState struct {
	URL      string         `json:"url"`
	Status   ScanStatus     `json:"status"`
	Scanning bool           `json:"scanning"`
	Result   *ScanResult    `json:"result"`
	History  []HistoryEntry `json:"history"`
	Copied   bool           `json:"copied"`
}
