// Package bfs animates breadth-first search over a core.Graph.
//
// BFS expands nodes in nondecreasing hop distance from the graph's start node
// and writes its progress straight into node and edge states, emitting one
// core.Step per mutation batch.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from its start node.
//
// With no start node BFS returns an empty Result and performs no mutation.
// Errors: ErrGraphNil, ErrOptionViolation, the context error on cancellation
// (unwrapped), or a wrapped OnStep error.
//
// Complexity: O(V + E·deg) time (Link lookup per discovered edge), O(V) memory.
func BFS(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	start, ok := g.StartNode()
	if !ok {
		return w.res, nil
	}
	w.res.Start = start

	return w.res, w.run(start)
}

// run seeds the queue with the start node and drains it.
func (w *walker) run(start string) error {
	if err := w.checkCtx(); err != nil {
		return err
	}
	s, _ := w.graph.Node(start)
	s.State = core.NodeCurrent
	s.Distance = 0
	s.PathWeight = 0
	s.Parent = ""
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})
	if err := w.emit(core.Step{Kind: core.StepCurrent, Node: start}); err != nil {
		return err
	}

	for len(w.queue) > 0 {
		if err := w.checkCtx(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		n, ok := w.graph.Node(item.id)
		if !ok || n.State == core.NodeDone {
			continue
		}
		n.State = core.NodeCurrent
		w.res.Order = append(w.res.Order, item.id)

		if err := w.expand(n, item.depth); err != nil {
			return err
		}

		n.State = core.NodeDone
		if err := w.checkCtx(); err != nil {
			return err
		}
		if err := w.emit(core.Step{Kind: core.StepFinish, Node: item.id}); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers every successor of n that is neither Discovered nor Done,
// emitting one step per discovery.
func (w *walker) expand(n *core.Node, depth int) error {
	succ, err := w.graph.Successors(n.ID)
	if err != nil {
		return fmt.Errorf("bfs: successors of %q: %w", n.ID, err)
	}
	next := depth + 1
	for _, id := range succ {
		if err = w.checkCtx(); err != nil {
			return err
		}
		if !w.opts.FilterNeighbor(n.ID, id) {
			continue
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nb, _ := w.graph.Node(id)
		if nb == nil || nb.State == core.NodeDone || nb.State == core.NodeDiscovered || nb.State == core.NodeCurrent {
			continue
		}
		e := w.graph.Link(n.ID, id)
		if e == nil {
			continue
		}

		e.State = core.EdgeDiscovered
		w.queue = append(w.queue, queueItem{id: id, depth: next})
		nb.State = core.NodeDiscovered
		nb.Distance = n.Distance + 1
		nb.PathWeight = core.AddPathWeight(n.PathWeight, e.Weight)
		nb.Parent = n.ID
		w.res.Depth[id] = next
		w.res.Parent[id] = n.ID

		if err = w.emit(core.Step{Kind: core.StepDiscover, Node: id, Edge: e.ID}); err != nil {
			return err
		}
	}

	return nil
}

// checkCtx performs the non-blocking cancellation poll.
func (w *walker) checkCtx() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// emit counts the step and hands it to OnStep. Context errors pass through
// unwrapped so callers can tell cancellation from failure.
func (w *walker) emit(s core.Step) error {
	w.res.Steps++
	err := w.opts.OnStep(s)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("bfs: OnStep error at %s: %w", s, err)
}
