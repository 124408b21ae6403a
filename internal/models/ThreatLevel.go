package models

type ThreatLevel string

const (
	ThreatSafe       ThreatLevel = "safe"
	ThreatSuspicious ThreatLevel = "suspicious"
	ThreatDangerous  ThreatLevel = "dangerous"
)

func (l ThreatLevel) Valid() bool {
	switch l {
	case ThreatSafe, ThreatSuspicious, ThreatDangerous:
		return true
	}
	return false
}

// Title returns the capitalized label shown to users.
func (l ThreatLevel) Title() string {
	switch l {
	case ThreatSafe:
		return "Safe"
	case ThreatSuspicious:
		return "Suspicious"
	case ThreatDangerous:
		return "Dangerous"
	default:
		return "Unknown"
	}
}
