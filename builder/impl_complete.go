// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single node.
//   • Nodes on a ring; edges for every pair i<j in lexicographic order,
//     mirrored on directed graphs.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		r := ringRadius(n, cfg.spacing)
		ids, err := addNodes(g, methodComplete, ringPositions(ringCenter(cfg.origin, r), r, n))
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addSymmetricEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
