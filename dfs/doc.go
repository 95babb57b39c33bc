// Package dfs implements the animated depth-first traversal on a core.Graph,
// supporting both directed and undirected graphs.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     On entering a node it marks the edge from its caller Discovered, marks
//     the node Discovered and emits a step; once every successor is Discovered
//     or Done it marks the node Done and emits a step.
//   - The traversal keeps an explicit stack of frames instead of recursing.
//   - Supports:
//   - A step hook (OnStep)
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - Options: holds Context, OnStep, MaxDepth, FilterNeighbor
//   - Result: preorder, postorder, Depth and Parent maps, step count
//
// Node fields written by DFS:
//
//   - Distance: depth in the DFS tree.
//   - PathWeight: sum of edge weights along the DFS tree path.
//   - Parent: the node it was discovered from.
//
// Complexity:
//
//   - DFS: Time O(V+E·deg), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated (wrapped) from OnStep
package dfs
