// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: Execution state machine and the Status value read by collaborators.

package coordinator

import (
	"time"

	"github.com/katalvlaran/algoviz/algorithms"
)

// State is the observable execution state of a Coordinator.
type State int

const (
	Idle State = iota
	Running
	Finished
	Cancelled
)

var stateNames = [...]string{
	Idle:      "idle",
	Running:   "running",
	Finished:  "finished",
	Cancelled: "cancelled",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool { return s == Finished || s == Cancelled }

// outcome is the metric/span label for a terminal state.
func outcome(s State, err error) string {
	switch {
	case err != nil:
		return "failed"
	case s == Cancelled:
		return "cancelled"
	default:
		return "finished"
	}
}

// Status is a copy of the execution state of the latest run.
type Status struct {
	State     State
	RunID     string
	Algorithm algorithms.Algorithm
	// Steps counts mutation batches applied by the latest run.
	Steps int
	// Seq counts steps across all runs of this Coordinator.
	Seq uint64
	// Cancelled is set once Cancel was observed by the latest run.
	Cancelled bool
	// Err is a non-cancellation failure of the latest run, if any.
	Err     error
	Started time.Time
	Ended   time.Time
}
