package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEntry_WireFormat(t *testing.T) {
	e := HistoryEntry{
		ID:          "1717171717171",
		URL:         "http://example.com",
		Timestamp:   time.Date(2024, 5, 31, 16, 8, 37, 171_000_000, time.UTC),
		ThreatLevel: ThreatSuspicious,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1717171717171","url":"http://example.com","timestamp":"2024-05-31T16:08:37.171Z","threatLevel":"suspicious"}`, string(data))
}

func TestHistoryEntry_UnmarshalISOTimestamp(t *testing.T) {
	raw := `{"id":"a","url":"http://x","timestamp":"2024-05-31T16:08:37.171Z","threatLevel":"dangerous"}`
	var e HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))

	assert.Equal(t, ThreatDangerous, e.ThreatLevel)
	assert.True(t, e.Timestamp.Equal(time.Date(2024, 5, 31, 16, 8, 37, 171_000_000, time.UTC)))
}

func TestHistoryEntry_TimestampKeepsTrailingZeroMillis(t *testing.T) {
	e := HistoryEntry{
		ID:          "a",
		URL:         "http://x",
		Timestamp:   time.Date(2024, 5, 31, 16, 8, 37, 170_000_000, time.UTC),
		ThreatLevel: ThreatSafe,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"2024-05-31T16:08:37.170Z"`)
}

func TestHistoryEntry_TimestampWholeSecond(t *testing.T) {
	e := HistoryEntry{Timestamp: time.Date(2024, 5, 31, 16, 8, 37, 0, time.UTC)}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"2024-05-31T16:08:37.000Z"`)
}

func TestHistoryEntry_TimestampConvertedToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	e := HistoryEntry{Timestamp: time.Date(2024, 5, 31, 18, 8, 37, 5_000_000, zone)}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"2024-05-31T16:08:37.005Z"`)
}

func TestHistoryEntry_RoundTrip(t *testing.T) {
	e := HistoryEntry{
		ID:          "b",
		URL:         "http://y",
		Timestamp:   time.Date(2024, 5, 31, 16, 8, 37, 100_000_000, time.UTC),
		ThreatLevel: ThreatDangerous,
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var got HistoryEntry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, e.URL, got.URL)
	assert.Equal(t, e.ThreatLevel, got.ThreatLevel)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
}
