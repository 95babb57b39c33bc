// SPDX-License-Identifier: MIT
//
// File: step.go
// Role: Description of one atomic batch of traversal mutations.

package core

import "fmt"

// StepKind names what a traversal step did.
type StepKind int

const (
	// StepCurrent: a node became the node being expanded.
	StepCurrent StepKind = iota + 1
	// StepDiscover: a node (and usually the edge leading to it) was discovered.
	StepDiscover
	// StepFinish: a node was marked done.
	StepFinish
	// StepSelect: Dijkstra selected the next minimum-distance node.
	StepSelect
)

var stepKindNames = [...]string{
	StepCurrent:  "current",
	StepDiscover: "discover",
	StepFinish:   "finish",
	StepSelect:   "select",
}

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if k <= 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}
	return stepKindNames[k]
}

// Step describes the mutation batch an engine just applied. Node is the
// node whose state changed; Edge is the edge whose state changed in the same
// batch, or "".
type Step struct {
	Kind StepKind
	Node string
	Edge string
}

// String implements fmt.Stringer.
func (s Step) String() string {
	if s.Edge == "" {
		return fmt.Sprintf("%s %s", s.Kind, s.Node)
	}
	return fmt.Sprintf("%s %s via %s", s.Kind, s.Node, s.Edge)
}

// StepFunc receives each step right after its mutations were applied.
// Returning an error stops the traversal.
type StepFunc func(Step) error
