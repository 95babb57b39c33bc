// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   • The hub is added first (so it is the start node of a fresh graph) at
//     the ring centre; leaves follow on the ring.
//   • Spokes hub → leaf in leaf order; mirrored on directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n nodes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, leaves, err := addHubAndRing(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		return addSpokes(g, cfg, methodStar, hub, leaves)
	}
}

// addHubAndRing adds a hub at the centre of a ring of m nodes, hub first.
func addHubAndRing(g *core.Graph, cfg builderConfig, method string, m int) (string, []string, error) {
	r := ringRadius(m, cfg.spacing)
	c := ringCenter(cfg.origin, r)

	hub, err := addNodes(g, method, []core.Point{c})
	if err != nil {
		return "", nil, err
	}
	rim, err := addNodes(g, method, ringPositions(c, r, m))
	if err != nil {
		return "", nil, err
	}
	return hub[0], rim, nil
}

// addSpokes connects hub to every rim node in order.
func addSpokes(g *core.Graph, cfg builderConfig, method, hub string, rim []string) error {
	for _, id := range rim {
		if err := addSymmetricEdge(g, cfg, method, hub, id); err != nil {
			return err
		}
	}
	return nil
}
