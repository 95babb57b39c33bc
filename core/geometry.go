// SPDX-License-Identifier: MIT
//
// File: geometry.go
// Role: Minimal planar geometry for node overlap checks and point hit tests.
//
// The core never deals with drawing; it only needs to know whether two node
// regions intersect and whether a point falls inside a node or near an edge.

package core

import "math"

// Point is a position on the editing canvas.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle [Min, Max).
type Rect struct {
	Min Point
	Max Point
}

// Overlaps reports whether r and s have a non-empty intersection.
// Rectangles that merely touch along an edge do not overlap.
func (r Rect) Overlaps(s Rect) bool {
	return r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// boundsAt returns the square region of a node anchored at p.
func (g *Graph) boundsAt(p Point) Rect {
	d := 2 * g.radius
	return Rect{Min: p, Max: Point{X: p.X + d, Y: p.Y + d}}
}

// Bounds returns the region occupied by node id.
func (g *Graph) Bounds(id string) (Rect, error) {
	n, ok := g.nodes.Get(id)
	if !ok {
		return Rect{}, ErrNodeNotFound
	}
	return g.boundsAt(n.Position), nil
}

// center returns the centre of the node region anchored at p.
func (g *Graph) center(p Point) Point {
	return Point{X: p.X + g.radius, Y: p.Y + g.radius}
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
