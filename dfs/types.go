// Package dfs defines types and options for the step-by-step depth-first
// traversal, including cancellation, the step hook, depth limiting, neighbor
// filtering, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/algoviz/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E·deg) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is polled before every node entry and every stack pop.
	Ctx context.Context

	// OnStep, if non-nil, is invoked after each mutation batch.
	// Returning an error aborts traversal with that error.
	OnStep core.StepFunc

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each successor ID before
	// descending. Return true to traverse into that neighbor.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No step hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep returns an Option that installs fn as the step hook.
func WithOnStep(fn core.StepFunc) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters successor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Start is the node the traversal began at, "" when the graph had none.
	Start string

	// Order records nodes in the sequence they were discovered (preorder).
	Order []string

	// Finish records nodes in the sequence they were marked done (postorder).
	Finish []string

	// Depth maps each discovered node ID to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each node ID to the node it was first discovered from.
	// The start node does not appear in this map.
	Parent map[string]string

	// Steps counts emitted steps.
	Steps int

	// SkippedNeighbors reports how many successors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}
