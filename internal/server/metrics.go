package server

import (
	"sync/atomic"
	"time"

	"github.com/Brownie44l1/webserver/internal/response"
)

// Metrics holds server runtime counters. Nothing reads them on the
// request path.
type Metrics struct {
	ConnectionsTotal  atomic.Int64
	ActiveConnections atomic.Int64
	AcceptErrors      atomic.Int64
	RequestsTotal     atomic.Int64
	NotFoundTotal     atomic.Int64
	PanicsTotal       atomic.Int64

	// Latency tracking (simplified - use histogram in production)
	TotalLatencyNs atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordRequest records a completed request
func (m *Metrics) RecordRequest(outcome response.Outcome, duration time.Duration) {
	m.RequestsTotal.Add(1)
	m.TotalLatencyNs.Add(duration.Nanoseconds())

	if outcome == response.OutcomeNotFound {
		m.NotFoundTotal.Add(1)
	}
}

// AverageLatency returns average request latency
func (m *Metrics) AverageLatency() time.Duration {
	totalReqs := m.RequestsTotal.Load()
	if totalReqs == 0 {
		return 0
	}

	avgNs := m.TotalLatencyNs.Load() / totalReqs
	return time.Duration(avgNs)
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	ConnectionsTotal  int64
	ActiveConnections int64
	AcceptErrors      int64
	RequestsTotal     int64
	NotFoundTotal     int64
	PanicsTotal       int64
	AverageLatency    time.Duration
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ConnectionsTotal:  m.ConnectionsTotal.Load(),
		ActiveConnections: m.ActiveConnections.Load(),
		AcceptErrors:      m.AcceptErrors.Load(),
		RequestsTotal:     m.RequestsTotal.Load(),
		NotFoundTotal:     m.NotFoundTotal.Load(),
		PanicsTotal:       m.PanicsTotal.Load(),
		AverageLatency:    m.AverageLatency(),
	}
}
