package riskgate

import "sync/atomic"

// MetricID identifies one gateway counter.
type MetricID uint16

const (
	// MetricLoginSuccess counts fulfilled login workflows.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected login workflows.
	MetricLoginFailure
	// MetricRegisterSuccess counts fulfilled registration workflows.
	MetricRegisterSuccess
	// MetricRegisterFailure counts rejected registration workflows.
	MetricRegisterFailure
	// MetricUnauthorizedIdentity counts 401 responses from the identity domain.
	MetricUnauthorizedIdentity
	// MetricUnauthorizedAnalytical counts 401 responses from the analytical domain.
	MetricUnauthorizedAnalytical
	// MetricInvalidation counts session teardowns triggered by a 401.
	MetricInvalidation
	// MetricLogout counts explicit logouts.
	MetricLogout
	// MetricSessionHydrated counts sessions restored from the persisted
	// store at build time.
	MetricSessionHydrated
	// MetricStoreFailure counts persisted-store writes or clears that
	// returned an error.
	MetricStoreFailure

	metricCount
)

// Metrics is a fixed set of atomic counters. A nil *Metrics (metrics
// disabled) accepts Inc calls and snapshots as empty.
type Metrics struct {
	counters [metricCount]atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

func newMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return nil
	}
	return &Metrics{}
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// Snapshot copies all counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
