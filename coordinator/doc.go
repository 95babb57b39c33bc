// Package coordinator runs one traversal at a time on a background worker and
// mediates access to the shared core.Graph between that worker and any number
// of display readers.
//
// Execution model:
//
//   - Run starts a worker goroutine. The worker holds the graph's write lock
//     while the engine mutates state, and releases it at every step boundary:
//     publish the step, sleep the pacing interval, re-acquire, continue.
//   - Readers (View, Snapshot, a render loop) take the read lock, so they only
//     ever observe the graph between two complete steps.
//   - Cancel is cooperative. The engine polls the run context at loop heads and
//     stack boundaries; the pacing sleep also wakes on cancellation, so a run
//     stops within one pacing interval.
//
// State machine:
//
//	Idle ──Run──▶ Running ──▶ Finished
//	                 │
//	                 └─Cancel─▶ Cancelled
//
// Only one run may be Running. A second Run returns ErrAlreadyRunning and Edit
// returns ErrRunning until the run reaches a terminal state.
//
// Observability:
//
//	WithLogger(logr.Logger)          run start/end, steps at V(1)
//	WithMetrics(*Metrics)            Prometheus counters, histogram and gauge
//	WithTracer(trace.Tracer)         one "coordinator.Run" span per run
//	WithOnStep(func(Event))          synchronous callback on the worker
//	Subscribe(buffer)                non-blocking fan-out of the same events
package coordinator
