// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
//
// Every edge is listed under both endpoints' incident sets (two index entries,
// one arena object). The neighbor relation of a pair lives as long as at least
// one edge still joins the pair.

package core

import (
	"fmt"
	"strconv"
)

// AddEdge connects a and b with the given weight and returns the new edge ID.
//
// Implementation:
//   - Stage 1: Validate IDs, existence of both endpoints, loop and weight policy.
//   - Stage 2: Reject if an edge already connects the pair (direction-aware on directed graphs).
//   - Stage 3: Register the edge in the arena, both incident sets, both neighbor sets.
//
// Errors:
//   - ErrEmptyNodeID, ErrNodeNotFound (fail fast, adjacency untouched).
//   - ErrLoopNotAllowed, ErrBadWeight, ErrDuplicateEdge.
//
// Complexity:
//   - Time O(deg(a)), Space O(1).
func (g *Graph) AddEdge(a, b string, weight int64) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyNodeID
	}
	if !g.HasNode(a) {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	if !g.HasNode(b) {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	if a == b {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if g.connected(a, b) {
		return "", fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, a, b)
	}

	id := edgeIDPrefix + strconv.FormatUint(g.edgeSeq, 10)
	g.edgeSeq++
	g.edges.Set(id, &Edge{ID: id, From: a, To: b, Weight: weight, State: EdgeUndiscovered})
	g.incident[a].Set(id, struct{}{})
	g.incident[b].Set(id, struct{}{})
	g.neighbors[a].Set(b, struct{}{})
	g.neighbors[b].Set(a, struct{}{})

	return id, nil
}

// RemoveEdge detaches the edge from both endpoints and drops it from the arena.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists (no mutation).
//
// Complexity:
//   - Time O(deg(From)), Space O(1).
func (g *Graph) RemoveEdge(eid string) error {
	e, ok := g.edges.Get(eid)
	if !ok {
		return ErrEdgeNotFound
	}
	g.detachEdge(e)

	return nil
}

// SetEdgeWeight changes the weight of an existing edge.
func (g *Graph) SetEdgeWeight(eid string, weight int64) error {
	e, ok := g.edges.Get(eid)
	if !ok {
		return ErrEdgeNotFound
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	e.Weight = weight

	return nil
}

// Edge returns the live edge with the given ID.
func (g *Graph) Edge(eid string) (*Edge, bool) {
	return g.edges.Get(eid)
}

// Edges returns the live edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edges.Len())
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// EdgeBetween returns the first edge in a's incident set joining a and b,
// ignoring direction. Returns nil if none exists.
// Complexity: O(deg(a))
func (g *Graph) EdgeBetween(a, b string) *Edge {
	set, ok := g.incident[a]
	if !ok {
		return nil
	}
	for pair := set.Oldest(); pair != nil; pair = pair.Next() {
		e, _ := g.edges.Get(pair.Key)
		if e != nil && e.Connects(a, b, false) {
			return e
		}
	}
	return nil
}

// Link returns the edge a traversal follows from `from` to `to`: on a directed
// graph the first edge running from→to, otherwise EdgeBetween.
func (g *Graph) Link(from, to string) *Edge {
	if !g.directed {
		return g.EdgeBetween(from, to)
	}
	set, ok := g.incident[from]
	if !ok {
		return nil
	}
	for pair := set.Oldest(); pair != nil; pair = pair.Next() {
		e, _ := g.edges.Get(pair.Key)
		if e != nil && e.Connects(from, to, true) {
			return e
		}
	}
	return nil
}

// EdgeAt returns the first edge (insertion order) whose centre-to-centre
// segment passes within a quarter radius of p.
func (g *Graph) EdgeAt(p Point) (*Edge, bool) {
	tolerance := g.radius / 4
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		from, _ := g.nodes.Get(e.From)
		to, _ := g.nodes.Get(e.To)
		if from == nil || to == nil {
			continue
		}
		if segmentDistance(p, g.center(from.Position), g.center(to.Position)) <= tolerance {
			return e, true
		}
	}
	return nil, false
}

// connected reports whether an edge already joins a and b under the graph's
// direction semantics.
func (g *Graph) connected(a, b string) bool {
	for pair := g.incident[a].Oldest(); pair != nil; pair = pair.Next() {
		e, _ := g.edges.Get(pair.Key)
		if e != nil && e.Connects(a, b, g.directed) {
			return true
		}
	}
	return false
}

// detachEdge removes e from the arena and both endpoints' indices. The
// neighbor relation is dropped only when no other edge joins the pair.
func (g *Graph) detachEdge(e *Edge) {
	g.edges.Delete(e.ID)
	if set, ok := g.incident[e.From]; ok {
		set.Delete(e.ID)
	}
	if set, ok := g.incident[e.To]; ok {
		set.Delete(e.ID)
	}
	if g.EdgeBetween(e.From, e.To) == nil {
		if set, ok := g.neighbors[e.From]; ok {
			set.Delete(e.To)
		}
		if set, ok := g.neighbors[e.To]; ok {
			set.Delete(e.From)
		}
	}
	if g.toggled != nil && g.toggled.Kind == EntityEdge && g.toggled.ID == e.ID {
		g.toggled = nil
	}
}
