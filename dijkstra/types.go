// Package dijkstra defines core types and configuration options
// for the animated Dijkstra shortest-path run over a core.Graph.
//
// Options:
//
//	– Ctx:              cancellation, polled at every loop head and relaxation.
//	– OnStep:           hook called after every mutation batch.
//	– MaxDistance:      relaxations that would exceed this distance are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          if PathTo is asked for an unreached node.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates the requested destination was never reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – relaxations producing a distance above this are skipped.
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is core.Infinity (no obstacles).
type Options struct {
	Ctx              context.Context
	OnStep           core.StepFunc
	MaxDistance      int64
	InfEdgeThreshold int64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs the step hook.
func WithOnStep(fn core.StepFunc) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values surface as ErrBadMaxDistance when Dijkstra is invoked.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Zero or negative values surface as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:              context.Background()
//   - OnStep:           nil (no hook)
//   - MaxDistance:      core.Infinity (no distance limit).
//   - InfEdgeThreshold: core.Infinity (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      core.Infinity,
		InfEdgeThreshold: core.Infinity,
	}
}

// Result is the outcome of a Dijkstra run.
//
//   - Order: nodes in selection order (exactly NodeCount entries on a full run).
//   - Dist:  final distance per selected node (core.Infinity if unreachable).
//   - Prev:  predecessor edge ID per reached node other than the start.
//   - Parent: predecessor node ID per reached node other than the start.
type Result struct {
	Start  string
	Order  []string
	Dist   map[string]int64
	Prev   map[string]string
	Parent map[string]string
	Steps  int
}

// PathTo reconstructs the shortest path from the start node to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if d, ok := r.Dist[dest]; !ok || d == core.Infinity {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
