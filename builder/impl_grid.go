// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model: 2D orthogonal lattice with 4-neighbourhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Nodes in row-major order, one spacing apart.
//   • For each cell, emit Right then Bottom if present; mirrored on directed graphs.
//
// Complexity: O(rows·cols) nodes and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids, err := addNodes(g, methodGrid, gridPositions(cfg.origin, rows, cols, cfg.spacing))
		if err != nil {
			return err
		}
		at := func(r, c int) string { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addSymmetricEdge(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addSymmetricEdge(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
