// Package dijkstra implements Dijkstra's shortest-path algorithm as a
// step-by-step animation over a core.Graph.
//
// Selection is a linear scan over the nodes in insertion order, picking the
// node with the smallest tentative distance among those neither Discovered
// nor Done; ties go to the node met first. There is no priority queue: every
// selection is visible as a step, and the scan keeps the tie-break trivially
// deterministic.
//
// Complexity:
//
//   - Time:  O(V² + E·deg)
//   - V selections, each an O(V) scan.
//   - Each relaxation looks up the connecting edge in O(deg).
//   - Space: O(V) for the result maps.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Dijkstra computes shortest distances from g's start node to every node,
// writing the progress into node and edge states.
//
// Each selection emits two steps: StepSelect when the node turns Discovered
// (together with its predecessor edge), and StepFinish when it turns Done
// after its successors were relaxed. The run ends after exactly NodeCount
// selections; nodes that are unreachable are still selected, with an
// infinite distance, and relax nothing.
//
// With no start node Dijkstra returns an empty Result and performs no mutation.
// Like the other engines it expects a reset graph: nodes already Discovered or
// Done are left as they are, so on a finished graph it selects nothing.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Prepare the result.
	V := g.NodeCount()
	res := &Result{
		Order:  make([]string, 0, V),
		Dist:   make(map[string]int64, V),
		Prev:   make(map[string]string, V),
		Parent: make(map[string]string, V),
	}
	start, ok := g.StartNode()
	if !ok {
		return res, nil
	}
	res.Start = start

	r := &runner{g: g, options: cfg, res: res, prevEdge: make(map[string]*core.Edge, V)}
	if err := r.checkCtx(); err != nil {
		return res, err
	}

	// 4) Initialize algorithm state and run main loop.
	r.init()
	return res, r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	options  Options
	res      *Result
	prevEdge map[string]*core.Edge // node ID → edge that last improved its distance
}

// init sets the start node to distance 0 and every other node still to be
// selected to +∞. Nodes already Discovered or Done (a graph that was not
// reset) keep their distances and are never selected again.
func (r *runner) init() {
	for _, n := range r.g.Nodes() {
		if n.State == core.NodeDone || n.State == core.NodeDiscovered {
			continue
		}
		n.Parent = ""
		if n.ID == r.res.Start {
			n.Distance, n.PathWeight = 0, 0
			continue
		}
		n.Distance, n.PathWeight = core.Infinity, core.Infinity
	}
}

// process performs NodeCount selections.
func (r *runner) process() error {
	V := r.g.NodeCount()
	for i := 0; i < V; i++ {
		if err := r.checkCtx(); err != nil {
			return err
		}
		cur := r.selectMin()
		if cur == nil {
			return nil
		}

		// 1) Select: the node and the edge that reached it become Discovered.
		cur.State = core.NodeDiscovered
		step := core.Step{Kind: core.StepSelect, Node: cur.ID}
		if e, ok := r.prevEdge[cur.ID]; ok && cur.ID != r.res.Start {
			e.State = core.EdgeDiscovered
			step.Edge = e.ID
		}
		r.res.Order = append(r.res.Order, cur.ID)
		if err := r.emit(step); err != nil {
			return err
		}

		// 2) Relax from finite distances only; +∞ + w must never be computed.
		if cur.Distance != core.Infinity {
			if err := r.relax(cur); err != nil {
				return err
			}
		}

		// 3) Done.
		cur.State = core.NodeDone
		r.res.Dist[cur.ID] = cur.Distance
		if err := r.checkCtx(); err != nil {
			return err
		}
		if err := r.emit(core.Step{Kind: core.StepFinish, Node: cur.ID}); err != nil {
			return err
		}
	}

	return nil
}

// selectMin returns the first node (insertion order) with the minimum
// distance among nodes neither Discovered nor Done, or nil.
func (r *runner) selectMin() *core.Node {
	var best *core.Node
	for _, n := range r.g.Nodes() {
		if n.State == core.NodeDone || n.State == core.NodeDiscovered {
			continue
		}
		if best == nil || n.Distance < best.Distance {
			best = n
		}
	}

	return best
}

// relax examines each successor of u and improves Undiscovered neighbors.
// It respects InfEdgeThreshold and MaxDistance, and guards the addition
// against overflow.
func (r *runner) relax(u *core.Node) error {
	succ, err := r.g.Successors(u.ID)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get successors of %q: %w", u.ID, err)
	}
	for _, id := range succ {
		if err = r.checkCtx(); err != nil {
			return err
		}
		v, _ := r.g.Node(id)
		if v == nil || v.State != core.NodeUndiscovered {
			continue
		}
		e := r.g.Link(u.ID, id)
		if e == nil || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if e.Weight > core.Infinity-u.Distance {
			continue // would overflow; cannot beat any finite distance anyway
		}
		newDist := u.Distance + e.Weight
		if newDist > r.options.MaxDistance || newDist >= v.Distance {
			continue
		}

		v.Distance = newDist
		v.PathWeight = newDist
		v.Parent = u.ID
		r.prevEdge[id] = e
		r.res.Prev[id] = e.ID
		r.res.Parent[id] = u.ID
	}

	return nil
}

func (r *runner) checkCtx() error {
	select {
	case <-r.options.Ctx.Done():
		return r.options.Ctx.Err()
	default:
		return nil
	}
}

// emit counts the step and runs OnStep; context errors pass through unwrapped.
func (r *runner) emit(s core.Step) error {
	r.res.Steps++
	if r.options.OnStep == nil {
		return nil
	}
	err := r.options.OnStep(s)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("dijkstra: OnStep error at %s: %w", s, err)
}
