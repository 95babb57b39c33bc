// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// helpers.go — layout geometry and the add helpers shared by constructors.
//
// Positions are node anchors (the top-left corner of a node region, see
// core.Graph.Bounds). Layouts only produce anchors at or right/below
// cfg.origin, so composed constructors can be placed side by side.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/core"
)

// ringRadius returns the radius of a ring of m nodes whose adjacent anchors
// are spacing apart. It is never below spacing, so a hub at the ring centre
// keeps its distance to every rim node.
func ringRadius(m int, spacing float64) float64 {
	if m < 3 {
		return spacing
	}
	return math.Max(spacing, spacing/(2*math.Sin(math.Pi/float64(m))))
}

// ringCenter returns the centre of a ring with radius r laid out from origin.
func ringCenter(origin core.Point, r float64) core.Point {
	return core.Point{X: origin.X + r, Y: origin.Y + r}
}

// ringPositions places m anchors clockwise on a circle, the first at 12 o'clock.
func ringPositions(center core.Point, r float64, m int) []core.Point {
	pts := make([]core.Point, m)
	for i := range pts {
		angle := 2*math.Pi*float64(i)/float64(m) - math.Pi/2
		pts[i] = core.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}
	}
	return pts
}

// linePositions places n anchors left to right.
func linePositions(origin core.Point, n int, spacing float64) []core.Point {
	pts := make([]core.Point, n)
	for i := range pts {
		pts[i] = core.Point{X: origin.X + float64(i)*spacing, Y: origin.Y}
	}
	return pts
}

// gridPositions places rows×cols anchors in row-major order.
func gridPositions(origin core.Point, rows, cols int, spacing float64) []core.Point {
	pts := make([]core.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, core.Point{
				X: origin.X + float64(c)*spacing,
				Y: origin.Y + float64(r)*spacing,
			})
		}
	}
	return pts
}

// addNodes inserts one node per position and returns the issued IDs in order.
func addNodes(g *core.Graph, method string, pts []core.Point) ([]string, error) {
	ids := make([]string, len(pts))
	for i, p := range pts {
		id, err := g.AddNode(p)
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%.1f,%.1f): %w", method, p.X, p.Y, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// addEdge inserts u→v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	return nil
}

// addSymmetricEdge inserts u→v and, on a directed graph, also v→u with the
// same weight, so the topology is walkable both ways.
func addSymmetricEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if !g.Directed() {
		return nil
	}
	if _, err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
	}
	return nil
}

// nextOrigin returns the anchor for the next composed constructor: one
// spacing to the right of every node already in g.
func nextOrigin(g *core.Graph, cfg builderConfig) core.Point {
	if g.NodeCount() == 0 {
		return cfg.origin
	}
	maxX := math.Inf(-1)
	for _, n := range g.Nodes() {
		maxX = math.Max(maxX, n.Position.X)
	}
	return core.Point{X: maxX + 2*g.NodeRadius() + cfg.spacing, Y: cfg.origin.Y}
}
