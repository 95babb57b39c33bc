// Package dfs implements the step-by-step depth-first traversal on core.Graph.
//
// The recursion of a textbook DFS is replaced by an explicit stack of frames,
// so cancellation is observable at every node boundary and deep graphs cannot
// exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E·deg) (a Link lookup per tree edge).
//   - Memory: O(V) for the frame stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - context.Canceled          if ctx is done (unwrapped).
//   - any error returned by OnStep, wrapped.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// frame is one entry of the explicit DFS stack: a discovered node, the
// successors it had when entered, and the index of the next one to try.
type frame struct {
	node  *core.Node
	succ  []string
	next  int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  Options     // traversal options
	res   *Result     // result collector
	stack []frame
}

// DFS performs depth-first search on g from its start node.
// With no start node it returns an empty Result and performs no mutation.
func DFS(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := g.NodeCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Finish: make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	start, ok := g.StartNode()
	if !ok {
		return res, nil
	}
	res.Start = start

	// 4. Traverse
	w := &dfsWalker{graph: g, opts: dopts, res: res}
	if err := w.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// traverse drives the explicit stack until it is empty.
func (w *dfsWalker) traverse(start string) error {
	if err := w.checkCtx(); err != nil {
		return err
	}
	s, _ := w.graph.Node(start)
	s.Distance = 0
	s.PathWeight = 0
	if err := w.enter(s, nil, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		child, via, err := w.nextChild(top)
		if err != nil {
			return err
		}
		if child != nil {
			child.Distance = top.node.Distance + 1
			child.PathWeight = core.AddPathWeight(top.node.PathWeight, via.Weight)
			child.Parent = top.node.ID
			w.res.Parent[child.ID] = top.node.ID
			if err = w.enter(child, via, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// All successors exhausted: finish the node and pop its frame.
		top.node.State = core.NodeDone
		w.res.Finish = append(w.res.Finish, top.node.ID)
		id := top.node.ID
		w.stack = w.stack[:len(w.stack)-1]
		if err = w.checkCtx(); err != nil {
			return err
		}
		if err = w.emit(core.Step{Kind: core.StepFinish, Node: id}); err != nil {
			return err
		}
	}

	return nil
}

// enter marks the caller edge and the node Discovered, emits the step, and
// pushes the node's frame.
func (w *dfsWalker) enter(n *core.Node, via *core.Edge, depth int) error {
	succ, err := w.graph.Successors(n.ID)
	if err != nil {
		return fmt.Errorf("dfs: Successors(%q): %w", n.ID, err)
	}

	step := core.Step{Kind: core.StepDiscover, Node: n.ID}
	if via != nil {
		via.State = core.EdgeDiscovered
		step.Edge = via.ID
	}
	n.State = core.NodeDiscovered
	w.res.Order = append(w.res.Order, n.ID)
	w.res.Depth[n.ID] = depth
	w.stack = append(w.stack, frame{node: n, succ: succ, depth: depth})

	return w.emit(step)
}

// nextChild advances top past filtered and already-visited successors and
// returns the next node to descend into, or nil when the frame is exhausted.
// The context is polled before every candidate.
func (w *dfsWalker) nextChild(top *frame) (*core.Node, *core.Edge, error) {
	if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
		top.next = len(top.succ)
	}
	for top.next < len(top.succ) {
		if err := w.checkCtx(); err != nil {
			return nil, nil, err
		}
		id := top.succ[top.next]
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id) {
			w.res.SkippedNeighbors++
			continue
		}
		nb, ok := w.graph.Node(id)
		if !ok || nb.State == core.NodeDiscovered || nb.State == core.NodeDone {
			continue
		}
		if e := w.graph.Link(top.node.ID, id); e != nil {
			return nb, e, nil
		}
	}

	return nil, nil, nil
}

func (w *dfsWalker) checkCtx() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// emit counts the step and runs OnStep; context errors pass through unwrapped.
func (w *dfsWalker) emit(s core.Step) error {
	w.res.Steps++
	if w.opts.OnStep == nil {
		return nil
	}
	err := w.opts.OnStep(s)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("dfs: OnStep hook at %s: %w", s, err)
}
