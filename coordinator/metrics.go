// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus instruments for runs and steps.

package coordinator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the run instruments. A nil *Metrics records nothing.
type Metrics struct {
	runs     *prometheus.CounterVec
	rejected *prometheus.CounterVec
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	running  prometheus.Gauge
}

// NewMetrics creates the instruments and registers them on reg. Like promauto,
// it panics if the same names are already registered on reg; pass a fresh
// prometheus.NewRegistry() per Coordinator in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		// runs counts completed runs.
		// Labels: algorithm, outcome (finished, cancelled, failed)
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "runs_total",
			Help:      "Total traversal runs by terminal outcome",
		}, []string{"algorithm", "outcome"}),

		// rejected counts Run calls refused while another run was active.
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "runs_rejected_total",
			Help:      "Total run requests rejected because a run was active",
		}, []string{"algorithm"}),

		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "steps_total",
			Help:      "Total mutation batches applied by traversal engines",
		}, []string{"algorithm"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "algoviz",
			Name:      "run_duration_seconds",
			Help:      "Wall time of traversal runs including pacing",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"algorithm"}),

		running: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "algoviz",
			Name:      "running",
			Help:      "1 while a traversal run is active",
		}),
	}
}

func (m *Metrics) runStarted() {
	if m == nil {
		return
	}
	m.running.Inc()
}

func (m *Metrics) runRejected(algo string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(algo).Inc()
}

func (m *Metrics) step(algo string) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(algo).Inc()
}

func (m *Metrics) runEnded(algo, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.running.Dec()
	m.runs.WithLabelValues(algo, outcome).Inc()
	m.duration.WithLabelValues(algo).Observe(d.Seconds())
}
