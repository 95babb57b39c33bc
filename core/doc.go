// Package core provides the graph model behind the traversal visualiser: an
// id-indexed arena of nodes and edges with insertion-ordered adjacency.
//
// The Graph G = (V,E) holds:
//
//   - Nodes with a canvas position (used only for overlap and hit tests), a
//     semantic NodeState, a distance, a path weight, a predecessor ID and a
//     toggled flag.
//   - Edges with endpoints by ID, a non-negative integer weight, an EdgeState
//     and a toggled flag.
//   - For every node, the set of incident edge IDs (each edge listed under both
//     endpoints) and the set of neighbor IDs (symmetric).
//   - At most one start node and at most one toggled entity.
//
// Why an arena?
//
//   - Nodes and edges refer to each other only by ID, so there are no
//     ownership cycles and removal is a matter of deleting index entries.
//   - Every index is an insertion-ordered map (github.com/wk8/go-ordered-map),
//     which makes Nodes(), Edges(), Neighbors() and therefore every traversal
//     reproducible run after run.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Edges run From→To and duplicate detection is direction-aware.
//	    Neighbor sets stay symmetric; Successors() filters by direction.
//
//	– WithNodeRadius(r float64)
//	    Radius of a node; its region is the 2r×2r square at its position.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(pos Point) (id string, err error)   // O(V) overlap scan
//	RemoveNode(id string) error                 // O(deg(v)+V)
//	SetStartNode(id string) error               // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, weight int64) (edgeID string, err error) // O(deg(a))
//	RemoveEdge(edgeID string) error             // O(deg)
//
//	// State
//	Reset()                                     // O(V+E), idempotent
//	ToggleNode / ToggleEdge / Untoggle
//
//	// Queries
//	Node, Edge, NodeAt, EdgeAt, EdgeBetween, Link, Neighbors, Successors,
//	Incident, Nodes, Edges, Snapshot, Validate
//
// Concurrency:
//
//	Graph does no locking. Mutations are applied by one goroutine at a time;
//	the coordinator package owns the lock that serialises a running traversal
//	against display readers at step granularity.
package core
