// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Nodes on a ring, clockwise from 12 o'clock, in index order.
//   • Edges in stable order i → (i+1)%n for i=0..n-1 (one direction only on
//     directed graphs, so a directed cycle is a single loop).
//
// Complexity: O(n) nodes + O(n) edges; AddNode overlap checks make it O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		r := ringRadius(n, cfg.spacing)
		ids, err := addNodes(g, methodCycle, ringPositions(ringCenter(cfg.origin, r), r, n))
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}
