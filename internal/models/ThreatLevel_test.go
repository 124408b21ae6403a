package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreatLevel_Title(t *testing.T) {
	tests := []struct {
		level    ThreatLevel
		expected string
	}{
		{ThreatSafe, "Safe"},
		{ThreatSuspicious, "Suspicious"},
		{ThreatDangerous, "Dangerous"},
		{ThreatLevel("critical"), "Unknown"},
		{ThreatLevel(""), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.Title())
	}
}

func TestThreatLevel_Valid(t *testing.T) {
	assert.True(t, ThreatSafe.Valid())
	assert.True(t, ThreatSuspicious.Valid())
	assert.True(t, ThreatDangerous.Valid())
	assert.False(t, ThreatLevel("Safe").Valid())
	assert.False(t, ThreatLevel("").Valid())
}
