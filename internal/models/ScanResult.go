package models

import "time"

type Threat struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ScanDetails struct {
	LastScanned time.Time `json:"lastScanned"`
	DomainAge   string    `json:"domainAge"`
	IPLocation  string    `json:"ipLocation"`
}

// ScanResult is the outcome of one scan. Threats is empty iff ThreatLevel is safe.
type ScanResult struct {
	ThreatLevel ThreatLevel `json:"threatLevel"`
	Threats     []Threat    `json:"threats"`
	Details     ScanDetails `json:"details"`
}

func (r ScanResult) Clone() ScanResult {
	threats := make([]Threat, len(r.Threats))
	copy(threats, r.Threats)
	r.Threats = threats
	return r
}

func (r ScanResult) ThreatNames() []string {
	names := make([]string, 0, len(r.Threats))
	for _, t := range r.Threats {
		names = append(names, t.Name)
	}
	return names
}
