// SPDX-License-Identifier: MIT
//
// File: methods_state.go
// Role: Start node, toggled entity, Reset and Clear.
//
// Invariants maintained here:
//   - At most one start node; it is the only node in NodeStart after Reset.
//   - At most one toggled entity; the Toggled flag is set on exactly that entity.

package core

// StartNode returns the start node ID and whether one is set.
func (g *Graph) StartNode() (string, bool) {
	return g.start, g.start != ""
}

// SetStartNode makes id the start node. The previous start node is demoted
// to NodeUndiscovered with infinite distance; the new one becomes NodeStart
// with distance 0 and path weight 0.
//
// An empty id is a no-op (nil error).
//
// Errors:
//   - ErrNodeNotFound if id is unknown (no mutation).
func (g *Graph) SetStartNode(id string) error {
	if id == "" {
		return nil
	}
	if !g.HasNode(id) {
		return ErrNodeNotFound
	}
	g.promoteStart(id)

	return nil
}

func (g *Graph) promoteStart(id string) {
	if prev, ok := g.nodes.Get(g.start); ok && g.start != id {
		prev.State = NodeUndiscovered
		prev.Distance = Infinity
		prev.PathWeight = Infinity
	}
	n, _ := g.nodes.Get(id)
	g.start = id
	n.State = NodeStart
	n.Distance = 0
	n.PathWeight = 0
	n.Parent = ""
}

// Toggled returns the currently highlighted entity, if any.
func (g *Graph) Toggled() (Toggle, bool) {
	if g.toggled == nil {
		return Toggle{}, false
	}
	return *g.toggled, true
}

// ToggleNode highlights node id, clearing any previous highlight.
func (g *Graph) ToggleNode(id string) error {
	n, ok := g.nodes.Get(id)
	if !ok {
		return ErrNodeNotFound
	}
	g.Untoggle()
	n.Toggled = true
	g.toggled = &Toggle{Kind: EntityNode, ID: id}

	return nil
}

// ToggleEdge highlights edge eid, clearing any previous highlight.
func (g *Graph) ToggleEdge(eid string) error {
	e, ok := g.edges.Get(eid)
	if !ok {
		return ErrEdgeNotFound
	}
	g.Untoggle()
	e.Toggled = true
	g.toggled = &Toggle{Kind: EntityEdge, ID: eid}

	return nil
}

// Untoggle clears the highlighted entity. Idempotent.
func (g *Graph) Untoggle() {
	if g.toggled == nil {
		return
	}
	switch g.toggled.Kind {
	case EntityNode:
		if n, ok := g.nodes.Get(g.toggled.ID); ok {
			n.Toggled = false
		}
	case EntityEdge:
		if e, ok := g.edges.Get(g.toggled.ID); ok {
			e.Toggled = false
		}
	}
	g.toggled = nil
}

// Reset restores the canonical post-edit state: every node Undiscovered with
// infinite distance and path weight and no parent, the start node in
// NodeStart with distance and path weight 0, every edge Undiscovered, and no
// toggled entity. Reset is idempotent.
// Complexity: O(V + E)
func (g *Graph) Reset() {
	g.Untoggle()
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := pair.Value
		n.Parent = ""
		if n.ID == g.start {
			n.State = NodeStart
			n.Distance = 0
			n.PathWeight = 0
			continue
		}
		n.State = NodeUndiscovered
		n.Distance = Infinity
		n.PathWeight = Infinity
	}
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.State = EdgeUndiscovered
	}
}

// Clear drops every node and edge but keeps configuration and the ID
// counters, so IDs issued before Clear are never issued again.
func (g *Graph) Clear() {
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		delete(g.incident, pair.Key)
		delete(g.neighbors, pair.Key)
	}
	for g.nodes.Len() > 0 {
		g.nodes.Delete(g.nodes.Oldest().Key)
	}
	for g.edges.Len() > 0 {
		g.edges.Delete(g.edges.Oldest().Key)
	}
	g.start = ""
	g.toggled = nil
}
