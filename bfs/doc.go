// Package bfs provides a step-by-step breadth-first search over a core.Graph,
// written for visualisation: every discovery is applied to the graph's node
// and edge states and reported as a core.Step before the walk continues.
//
// What
//
//   - Start from the graph's start node (no start node: nothing happens).
//   - Dequeue a node; skip it if already Done; mark it Current.
//   - For each successor that is neither Discovered nor Done: mark the
//     connecting edge Discovered, enqueue the successor, mark it Discovered,
//     set Distance = parent Distance + 1, PathWeight = parent PathWeight +
//     edge weight, Parent = the expanding node. One step per discovery.
//   - Mark the expanded node Done. One step.
//   - Returns a Result containing:
//   - Order: expansion sequence
//   - Depth: node → hop count from start
//   - Parent: node → its predecessor in the BFS tree
//   - Steps: number of steps emitted
//
// Determinism
//
//	core.Graph enumerates successors in insertion order, so the step
//	sequence for a given graph is identical run after run.
//
// Directed graphs
//
//	Successors follow edge direction (core.Graph.Successors and Link).
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E·deg)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnStep(func(s core.Step) error { /* render, pace */ return nil }),
//	)
//	if errors.Is(err, context.Canceled) {
//	    // stopped between steps; the graph is structurally valid
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op OnStep, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithOnStep(fn):              hook after every mutation batch; an error aborts BFS.
//   - WithMaxDepth(d):             stop discovering beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip neighbors for which fn(curr,neighbor)==false.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               unwrapped, on cancellation.
//   - Wrapped OnStep errors.
package bfs
