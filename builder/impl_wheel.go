// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition: Wₙ = Cₙ₋₁ + hub, so n ≥ 4.
//
// Contract:
//   • Hub first at the ring centre, then the n-1 rim nodes.
//   • Rim edges i → (i+1)%(n-1) first, then spokes hub → rim in order
//     (spokes mirrored on directed graphs).

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, rim, err := addHubAndRing(g, cfg, methodWheel, n-1)
		if err != nil {
			return err
		}
		for i := range rim {
			if err = addEdge(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		return addSpokes(g, cfg, methodWheel, hub, rim)
	}
}
