// Package dijkstra provides the animated Dijkstra shortest-path run on graphs
// with non-negative integer edge weights.
//
// Overview:
//
//   - Single source: the graph's start node. No start node, no work.
//   - Repeat NodeCount times: select, among nodes neither Discovered nor
//     Done, the one with the minimum Distance (linear scan, first in
//     insertion order wins ties); mark it and its predecessor edge
//     Discovered; emit a step; if its distance is finite, relax every
//     Undiscovered successor; mark it Done; emit a step.
//   - Node.Distance and Node.PathWeight hold the tentative, then final,
//     distance. Node.Parent and Result.Prev record the predecessor.
//
// Arithmetic:
//
//	core.Infinity (math.MaxInt64) marks unreached nodes. Relaxation never
//	adds a weight to it and refuses additions that would overflow.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: skip relaxations beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Directed graphs relax along edge direction only.
//
// Performance and complexity:
//
//   - Time:  O(V² + E·deg)
//   - Space: O(V)
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g,
//	    dijkstra.WithContext(ctx),
//	    dijkstra.WithOnStep(func(s core.Step) error { return pace(ctx) }),
//	)
//	path, _ := res.PathTo(target)
package dijkstra
