package scanner

import (
	"strconv"
	"strings"
	"time"
	"urlchecker/internal/models"
)

const ScannedOnLayout = "2006-01-02 15:04:05"

// FormatResultText renders a result for copying. now is the copy time,
// not the scan time.
func FormatResultText(result models.ScanResult, url string, now time.Time) string {
	var b strings.Builder
	b.WriteString("URL: " + url + "\n")
	b.WriteString("Status: " + result.ThreatLevel.Title() + "\n")
	b.WriteString("Threats detected: " + strconv.Itoa(len(result.Threats)) + "\n")
	b.WriteString("Details: " + strings.Join(result.ThreatNames(), ", ") + "\n")
	b.WriteString("Scanned on: " + now.Local().Format(ScannedOnLayout))
	return b.String()
}
