// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Structural invariant check over the whole arena.

package core

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every violation reported from Validate.
var ErrInvariant = errors.New("core: invariant violated")

// Validate checks the structural invariants of g and returns the first
// violation found, wrapped in ErrInvariant:
//   - every edge's endpoints exist and list the edge in their incident sets;
//   - neighbor sets are symmetric, reference live nodes, and are backed by an edge;
//   - the start node, if any, exists;
//   - at most one entity carries the Toggled flag, and it matches Toggled().
//
// Complexity: O(V·deg + E·deg)
func (g *Graph) Validate() error {
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		for _, end := range [2]string{e.From, e.To} {
			set, ok := g.incident[end]
			if !ok || !g.HasNode(end) {
				return fmt.Errorf("%w: edge %s references missing node %s", ErrInvariant, e.ID, end)
			}
			if _, ok = set.Get(e.ID); !ok {
				return fmt.Errorf("%w: edge %s missing from incident set of %s", ErrInvariant, e.ID, end)
			}
		}
	}

	toggled := 0
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		id := pair.Key
		if pair.Value.Toggled {
			toggled++
		}
		set, ok := g.neighbors[id]
		if !ok {
			return fmt.Errorf("%w: node %s has no neighbor set", ErrInvariant, id)
		}
		for nb := set.Oldest(); nb != nil; nb = nb.Next() {
			back, ok := g.neighbors[nb.Key]
			if !ok || !g.HasNode(nb.Key) {
				return fmt.Errorf("%w: node %s lists missing neighbor %s", ErrInvariant, id, nb.Key)
			}
			if _, ok = back.Get(id); !ok {
				return fmt.Errorf("%w: neighbor relation %s-%s not symmetric", ErrInvariant, id, nb.Key)
			}
			if g.EdgeBetween(id, nb.Key) == nil {
				return fmt.Errorf("%w: neighbors %s-%s have no edge", ErrInvariant, id, nb.Key)
			}
		}
		if inc, ok := g.incident[id]; ok {
			for ep := inc.Oldest(); ep != nil; ep = ep.Next() {
				if _, ok := g.edges.Get(ep.Key); !ok {
					return fmt.Errorf("%w: node %s lists missing edge %s", ErrInvariant, id, ep.Key)
				}
			}
		}
	}
	if len(g.incident) != g.nodes.Len() || len(g.neighbors) != g.nodes.Len() {
		return fmt.Errorf("%w: index entries for removed nodes remain", ErrInvariant)
	}

	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Toggled {
			toggled++
		}
	}
	switch {
	case toggled > 1:
		return fmt.Errorf("%w: %d toggled entities", ErrInvariant, toggled)
	case toggled == 1 && g.toggled == nil, toggled == 0 && g.toggled != nil:
		return fmt.Errorf("%w: toggled flag and toggled entity disagree", ErrInvariant)
	}

	if g.start != "" && !g.HasNode(g.start) {
		return fmt.Errorf("%w: start node %s missing", ErrInvariant, g.start)
	}
	if g.start == "" && g.nodes.Len() > 0 {
		return fmt.Errorf("%w: non-empty graph without start node", ErrInvariant)
	}

	return nil
}
