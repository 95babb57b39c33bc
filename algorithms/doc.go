// Package algorithms is the single entry point to the traversal engines.
//
// It provides:
//
//   - Algorithm: the enumeration of animated traversals
//     – BFS (Breadth-First Search)
//     – DFS (Depth-First Search)
//     – Dijkstra (shortest paths, linear-scan selection)
//
//   - Parse / Algorithm.UnmarshalText: names from flags and scenario files.
//
//   - Run: dispatch to the matching engine with a context and a step hook,
//     returning a Summary that does not depend on the engine.
//
// Callers such as the coordinator never import bfs, dfs or dijkstra directly.
package algorithms
