// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Value copies of the graph for renderers and assertions.

package core

// Snapshot is a detached, value-only copy of a Graph. Nodes and Edges keep
// insertion order. Holding a Snapshot never aliases graph memory.
type Snapshot struct {
	Directed bool
	Radius   float64
	Start    string
	Toggled  *Toggle
	Nodes    []Node
	Edges    []Edge
}

// Snapshot copies the current state of g.
// Complexity: O(V + E)
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Directed: g.directed,
		Radius:   g.radius,
		Start:    g.start,
		Nodes:    make([]Node, 0, g.nodes.Len()),
		Edges:    make([]Edge, 0, g.edges.Len()),
	}
	if g.toggled != nil {
		t := *g.toggled
		s.Toggled = &t
	}
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		s.Nodes = append(s.Nodes, *pair.Value)
	}
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		s.Edges = append(s.Edges, *pair.Value)
	}

	return s
}

// Node returns the copy of node id held by the snapshot.
func (s Snapshot) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Edge returns the copy of edge eid held by the snapshot.
func (s Snapshot) Edge(eid string) (Edge, bool) {
	for _, e := range s.Edges {
		if e.ID == eid {
			return e, true
		}
	}
	return Edge{}, false
}

// CountNodes returns how many nodes are in state st.
func (s Snapshot) CountNodes(st NodeState) int {
	c := 0
	for _, n := range s.Nodes {
		if n.State == st {
			c++
		}
	}
	return c
}

// CountEdges returns how many edges are in state st.
func (s Snapshot) CountEdges(st EdgeState) int {
	c := 0
	for _, e := range s.Edges {
		if e.State == st {
			c++
		}
	}
	return c
}
