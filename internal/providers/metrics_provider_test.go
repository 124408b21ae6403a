package providers

import (
	"testing"
	"time"
	"urlchecker/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func withIsolatedRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prevReg, prevGather := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prevReg
		prometheus.DefaultGatherer = prevGather
	})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.IncScansTotal("safe")
	m.IncScansRejected()
	m.SetHistoryEntries(3)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	withIsolatedRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_ScanCounters(t *testing.T) {
	withIsolatedRegistry(t)

	m := NewMetricsProvider(&structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}).(*MetricsProvider)

	m.IncScansTotal("dangerous")
	m.IncScansTotal("dangerous")
	m.IncScansTotal("safe")
	m.IncScansRejected()
	m.SetHistoryEntries(7)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.scansTotal.WithLabelValues("dangerous")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.scansTotal.WithLabelValues("safe")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.scansRejected))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.historyEntries))
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	withIsolatedRegistry(t)

	m := NewMetricsProvider(&structures.Config{Metrics: structures.MetricsConfig{Enabled: true}})

	m.IncRequestsTotal("/scan", 200)
	m.IncRequestsTotal("/scan", 409)
	m.ObserveRequestDuration("/scan", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(100 * time.Millisecond)
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{204, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
