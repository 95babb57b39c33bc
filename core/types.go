// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, GraphOption, sentinel errors, and the NewGraph constructor.
//
// The Graph is an id-indexed arena: nodes and edges are owned by the graph and
// every cross reference (neighbor sets, per-node edge indices, predecessor
// links) is stored as an id, never as a pointer to another node or edge.
//
// Errors:
//
//	ErrEmptyNodeID       - node ID is the empty string.
//	ErrNodeNotFound      - requested node does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrPositionOccupied  - a new node's region overlaps an existing node.
//	ErrLoopNotAllowed    - an edge from a node to itself was requested.
//	ErrDuplicateEdge     - the endpoints are already connected.
//	ErrBadWeight         - negative edge weight.
package core

import (
	"errors"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation was given an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrPositionOccupied indicates the candidate node region intersects an existing node.
	ErrPositionOccupied = errors.New("core: position overlaps an existing node")

	// ErrLoopNotAllowed indicates a self-loop was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the two endpoints are already connected.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")
)

// Infinity is the distance and path-weight sentinel for "not reached".
// Arithmetic on distances must test for it before adding a weight.
const Infinity int64 = math.MaxInt64

// AddPathWeight returns base+w for a non-negative w. A sum that would reach
// Infinity or overflow saturates to Infinity, as does a base at Infinity.
func AddPathWeight(base, w int64) int64 {
	if base == Infinity || w > Infinity-1-base {
		return Infinity
	}
	return base + w
}

// DefaultNodeRadius is the radius of a node's drawn circle; its bounding
// region is the 2r×2r square anchored at the node position.
const DefaultNodeRadius = 30.0

const (
	nodeIDPrefix = "node_"
	edgeIDPrefix = "edge_"
)

// NodeState is the semantic traversal state of a node. Renderers map it to a
// display attribute; the graph never stores colours.
type NodeState int

const (
	NodeUndiscovered NodeState = iota
	NodeStart
	NodeCurrent
	NodeDiscovered
	NodeDone
	NodeTarget
	NodeNearest
)

var nodeStateNames = [...]string{
	NodeUndiscovered: "undiscovered",
	NodeStart:        "start",
	NodeCurrent:      "current",
	NodeDiscovered:   "discovered",
	NodeDone:         "done",
	NodeTarget:       "target",
	NodeNearest:      "nearest",
}

// String implements fmt.Stringer.
func (s NodeState) String() string {
	if s < 0 || int(s) >= len(nodeStateNames) {
		return "unknown"
	}
	return nodeStateNames[s]
}

// EdgeState is the semantic traversal state of an edge.
type EdgeState int

const (
	EdgeUndiscovered EdgeState = iota
	EdgeDiscovered
	EdgeSelected
)

var edgeStateNames = [...]string{
	EdgeUndiscovered: "undiscovered",
	EdgeDiscovered:   "discovered",
	EdgeSelected:     "selected",
}

// String implements fmt.Stringer.
func (s EdgeState) String() string {
	if s < 0 || int(s) >= len(edgeStateNames) {
		return "unknown"
	}
	return edgeStateNames[s]
}

// Node is a vertex of the visualised graph.
//
// Position is only used for overlap and hit tests; traversal engines never
// read it. Parent is a non-owning back-reference (node ID) used for path
// reconstruction, empty when the node has no predecessor.
type Node struct {
	ID         string
	Position   Point
	State      NodeState
	Distance   int64
	PathWeight int64
	Parent     string
	Toggled    bool
}

// Edge connects two nodes by ID. On an undirected graph From and To are an
// unordered pair; on a directed graph the edge runs From→To.
type Edge struct {
	ID      string
	From    string
	To      string
	Weight  int64
	State   EdgeState
	Toggled bool
}

// Other returns the endpoint of e opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}
	return ""
}

// Connects reports whether e joins a and b. Direction is honoured only when
// directed is true.
func (e *Edge) Connects(a, b string, directed bool) bool {
	if e.From == a && e.To == b {
		return true
	}
	return !directed && e.From == b && e.To == a
}

// EntityKind distinguishes what the single toggled entity is.
type EntityKind int

const (
	EntityNode EntityKind = iota + 1
	EntityEdge
)

// Toggle identifies the single highlighted entity of a graph.
type Toggle struct {
	Kind EntityKind
	ID   string
}

// idSet is an insertion-ordered set of IDs.
type idSet = orderedmap.OrderedMap[string, struct{}]

func newIDSet() *idSet { return orderedmap.New[string, struct{}]() }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets edge semantics for the whole graph.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithNodeRadius sets the radius used for node bounding regions.
// Non-positive values are ignored.
func WithNodeRadius(r float64) GraphOption {
	return func(g *Graph) {
		if r > 0 {
			g.radius = r
		}
	}
}

// Graph is the GraphModel: the node/edge arena plus adjacency indices.
//
// Graph performs no locking of its own. Editing happens on a single goroutine
// while no traversal runs; during a traversal the coordinator serialises the
// worker and every reader behind one lock held at step granularity.
type Graph struct {
	directed bool
	radius   float64

	// Monotonic counters; never rewound, so IDs are never reused.
	nodeSeq uint64
	edgeSeq uint64

	nodes *orderedmap.OrderedMap[string, *Node] // insertion-ordered node arena
	edges *orderedmap.OrderedMap[string, *Edge] // insertion-ordered edge arena

	// incident[nodeID] holds the IDs of every edge touching the node; each edge
	// is listed once under each endpoint.
	incident map[string]*idSet

	// neighbors[nodeID] holds adjacent node IDs, kept symmetric.
	neighbors map[string]*idSet

	start   string
	toggled *Toggle
}

// NewGraph creates an empty undirected Graph with the default node radius.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		radius:    DefaultNodeRadius,
		nodes:     orderedmap.New[string, *Node](),
		edges:     orderedmap.New[string, *Edge](),
		incident:  make(map[string]*idSet),
		neighbors: make(map[string]*idSet),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// NodeRadius reports the radius used for node regions.
func (g *Graph) NodeRadius() float64 { return g.radius }
