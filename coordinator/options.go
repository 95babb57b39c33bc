// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for New.

package coordinator

import (
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"
)

// DefaultPacing is the delay between two steps.
const DefaultPacing = 100 * time.Millisecond

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithPacing sets the delay inserted after every step. Zero disables pacing;
// negative values are ignored.
func WithPacing(d time.Duration) Option {
	return func(c *Coordinator) {
		if d >= 0 {
			c.pacing = d
		}
	}
}

// WithLogger sets the structured logger. Steps are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithMetrics records run metrics on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// WithTracer sets the tracer used for the per-run span. Nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(c *Coordinator) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithOnStep registers fn to be called on the worker goroutine after every
// step and once with the terminal event. fn runs without the graph lock held
// and may call View or Snapshot; it must not call Run, Edit or Wait.
func WithOnStep(fn func(Event)) Option {
	return func(c *Coordinator) { c.onStep = fn }
}

// WithResetBeforeRun controls whether Run resets the graph before starting.
// Default true. Without a reset the engines skip nodes that are already
// Discovered or Done, so a run over a finished graph applies no steps and
// leaves the previous distances in place.
func WithResetBeforeRun(on bool) Option {
	return func(c *Coordinator) { c.reset = on }
}
