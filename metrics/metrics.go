// SPDX-License-Identifier: MIT

// Package metrics instruments comparisons and sweeps with Prometheus.
//
// Collectors are created per Metrics value and registered on the Registerer
// passed to New, so tests can use a private registry. A nil *Metrics is a
// valid no-op recorder.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "rsacorr"

// Outcome labels for sweep observations.
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeUnsupported = "unsupported"
)

// MethodInvalid is the method label for a value outside the known set, so
// bad input cannot grow label cardinality.
const MethodInvalid = "invalid"

// Metrics groups the module's collectors.
type Metrics struct {
	// Comparisons counts pair comparisons by method.
	Comparisons *prometheus.CounterVec
	// Sweeps counts orchestrator calls by entry and outcome.
	Sweeps *prometheus.CounterVec
	// SweepDuration observes orchestrator wall time by entry.
	SweepDuration *prometheus.HistogramVec
	// SweepCells records the output cell count of the last sweep by entry.
	SweepCells *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Comparisons: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "comparisons_total",
				Help:      "Total number of RDM pair comparisons by method",
			},
			[]string{"method"},
		),
		Sweeps: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "sweeps_total",
				Help:      "Total number of sweep calls by entry and outcome",
			},
			[]string{"entry", "outcome"},
		),
		SweepDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "sweep_duration_seconds",
				Help:      "Wall time of sweep calls by entry",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"entry"},
		),
		SweepCells: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "sweep_cells",
				Help:      "Number of output cells of the last sweep by entry",
			},
			[]string{"entry"},
		),
	}
}

// ObserveSweep records one finished sweep. cells comparisons of method are
// counted only for OutcomeOK.
func (m *Metrics) ObserveSweep(entry, method, outcome string, cells int, d time.Duration) {
	if m == nil {
		return
	}
	m.Sweeps.WithLabelValues(entry, outcome).Inc()
	m.SweepDuration.WithLabelValues(entry).Observe(d.Seconds())
	if outcome != OutcomeOK {
		return
	}
	m.SweepCells.WithLabelValues(entry).Set(float64(cells))
	m.Comparisons.WithLabelValues(method).Add(float64(cells))
}

// ObserveReject records a call refused before any work ran. Only the sweep
// counter moves: a rejected call has no meaningful duration.
func (m *Metrics) ObserveReject(entry, outcome string) {
	if m == nil {
		return
	}
	m.Sweeps.WithLabelValues(entry, outcome).Inc()
}
