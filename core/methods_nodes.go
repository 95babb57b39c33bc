// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and node queries.
//
// Determinism:
//   - Nodes(), Neighbors() and Successors() enumerate in insertion order.
//
// Concurrency:
//   - None internally; see Graph.

package core

import (
	"fmt"
	"strconv"
)

// AddNode creates a node anchored at pos and returns its generated ID.
//
// Implementation:
//   - Stage 1: Reject the position if its region overlaps any existing node (no mutation).
//   - Stage 2: Allocate the next sequential ID and register empty adjacency entries.
//   - Stage 3: Promote the node to start node if it is the first one.
//
// Errors:
//   - ErrPositionOccupied if the region intersects an existing node.
//
// Complexity:
//   - Time O(V) for the overlap scan, Space O(1).
func (g *Graph) AddNode(pos Point) (string, error) {
	candidate := g.boundsAt(pos)
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if candidate.Overlaps(g.boundsAt(pair.Value.Position)) {
			return "", fmt.Errorf("%w: %s at (%.1f,%.1f)", ErrPositionOccupied, pair.Key, pair.Value.Position.X, pair.Value.Position.Y)
		}
	}

	id := nodeIDPrefix + strconv.FormatUint(g.nodeSeq, 10)
	g.nodeSeq++
	g.nodes.Set(id, &Node{
		ID:         id,
		Position:   pos,
		State:      NodeUndiscovered,
		Distance:   Infinity,
		PathWeight: Infinity,
	})
	g.incident[id] = newIDSet()
	g.neighbors[id] = newIDSet()

	if g.nodes.Len() == 1 {
		g.promoteStart(id)
	}

	return id, nil
}

// RemoveNode deletes the node and cascades to every edge and neighbor entry
// referencing it. If the node was the start node, the oldest remaining node
// becomes the new start node (or the graph has none).
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound. On error the graph is unchanged.
//
// Complexity:
//   - Time O(deg(v) + V), Space O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodes.Get(id); !ok {
		return ErrNodeNotFound
	}

	// Collect first: detachEdge mutates the set we would be iterating.
	var eids []string
	for pair := g.incident[id].Oldest(); pair != nil; pair = pair.Next() {
		eids = append(eids, pair.Key)
	}
	for _, eid := range eids {
		e, _ := g.edges.Get(eid)
		g.detachEdge(e)
	}

	// Any neighbor entries left over would be a broken invariant; clear defensively.
	for pair := g.neighbors[id].Oldest(); pair != nil; pair = pair.Next() {
		if set, ok := g.neighbors[pair.Key]; ok {
			set.Delete(id)
		}
	}

	g.nodes.Delete(id)
	delete(g.incident, id)
	delete(g.neighbors, id)

	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Parent == id {
			pair.Value.Parent = ""
		}
	}
	if g.toggled != nil && g.toggled.Kind == EntityNode && g.toggled.ID == id {
		g.toggled = nil
	}
	if g.start == id {
		g.start = ""
		if oldest := g.nodes.Oldest(); oldest != nil {
			g.promoteStart(oldest.Key)
		}
	}

	return nil
}

// Node returns the live node with the given ID.
// The pointer stays owned by the graph; mutate it only under the same
// discipline as any other graph mutation.
func (g *Graph) Node(id string) (*Node, bool) {
	return g.nodes.Get(id)
}

// HasNode reports whether id names an existing node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// NodeAt returns the first node (insertion order) whose region contains p.
func (g *Graph) NodeAt(p Point) (*Node, bool) {
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if g.boundsAt(pair.Value.Position).Contains(p) {
			return pair.Value, true
		}
	}
	return nil, false
}

// Nodes returns the live nodes in insertion order.
// Complexity: O(V)
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// NodeIDs returns node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// Neighbors returns the IDs adjacent to id, in the order the adjacency was
// created. The relation is symmetric regardless of directedness.
//
// Errors:
//   - ErrNodeNotFound if id is unknown.
func (g *Graph) Neighbors(id string) ([]string, error) {
	set, ok := g.neighbors[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, set.Len())
	for pair := set.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out, nil
}

// Successors returns the neighbors a traversal may step to from id. On an
// undirected graph this equals Neighbors; on a directed graph only neighbors
// reachable over an edge leaving id are kept. Order is Neighbors order.
func (g *Graph) Successors(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil || !g.directed {
		return nbrs, err
	}
	out := nbrs[:0]
	for _, nb := range nbrs {
		if g.Link(id, nb) != nil {
			out = append(out, nb)
		}
	}
	return out, nil
}

// Incident returns the edges touching id in the order they were attached.
func (g *Graph) Incident(id string) ([]*Edge, error) {
	set, ok := g.incident[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]*Edge, 0, set.Len())
	for pair := set.Oldest(); pair != nil; pair = pair.Next() {
		if e, ok := g.edges.Get(pair.Key); ok {
			out = append(out, e)
		}
	}
	return out, nil
}
