package scanner

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"urlchecker/internal/models"
	"urlchecker/internal/providers"
)

const (
	dangerousThreshold  = 0.2
	suspiciousThreshold = 0.4
	maxDomainAgeDays    = 1000
)

var (
	dangerousKeywords  = []string{"malware", "phishing"}
	suspiciousKeywords = []string{"suspicious"}

	dangerousThreats = []models.Threat{
		{
			Name:        "Phishing Attempt",
			Description: "This URL appears to be impersonating a legitimate website to steal personal information.",
		},
		{
			Name:        "Malware Distribution",
			Description: "This website may attempt to install malicious software on your device.",
		},
	}

	suspiciousThreats = []models.Threat{
		{
			Name:        "Suspicious Behavior",
			Description: "This website exhibits behavior patterns that are associated with potentially harmful websites.",
		},
	}

	ipLocations = []string{"United States", "Netherlands", "Germany", "Unknown"}
)

type ClassifierInterface interface {
	Classify(url string) models.ScanResult
}

// Classifier produces mock scan results. Keyword matches force a level; otherwise
// a single uniform draw picks dangerous (20%), suspicious (20%) or safe (60%).
// The same URL can classify differently on every call.
type Classifier struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock providers.Clock
}

func NewClassifier(clock providers.Clock) ClassifierInterface {
	return NewClassifierWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()), clock)
}

func NewClassifierWithSource(src rand.Source, clock providers.Clock) *Classifier {
	return &Classifier{rng: rand.New(src), clock: clock}
}

func (c *Classifier) Classify(url string) models.ScanResult {
	c.mu.Lock()
	r := c.rng.Float64()
	domainAge := c.rng.IntN(maxDomainAgeDays)
	location := ipLocations[c.rng.IntN(len(ipLocations))]
	c.mu.Unlock()

	level := classify(url, r)

	return models.ScanResult{
		ThreatLevel: level,
		Threats:     threatsFor(level),
		Details: models.ScanDetails{
			LastScanned: c.clock.Now().UTC(),
			DomainAge:   strconv.Itoa(domainAge) + " days",
			IPLocation:  location,
		},
	}
}

func classify(url string, r float64) models.ThreatLevel {
	if containsAny(url, dangerousKeywords) || r < dangerousThreshold {
		return models.ThreatDangerous
	}
	if containsAny(url, suspiciousKeywords) || r < suspiciousThreshold {
		return models.ThreatSuspicious
	}
	return models.ThreatSafe
}

func threatsFor(level models.ThreatLevel) []models.Threat {
	var src []models.Threat
	switch level {
	case models.ThreatDangerous:
		src = dangerousThreats
	case models.ThreatSuspicious:
		src = suspiciousThreats
	}
	out := make([]models.Threat, len(src))
	copy(out, src)
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
