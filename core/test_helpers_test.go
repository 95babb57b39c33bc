// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and small assertion helpers for core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/algoviz/core"
	"github.com/stretchr/testify/require"
)

// Spacing between fixture nodes; larger than 2*DefaultNodeRadius so fixture
// regions never overlap.
const Spacing = 100.0

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight3 = 3
	Weight5 = 5
)

// Slot returns a non-overlapping fixture position on a horizontal line.
func Slot(i int) core.Point {
	return core.Point{X: float64(i) * Spacing, Y: 0}
}

// MustNode adds a node at Slot(i) and fails the test on error.
func MustNode(t testing.TB, g *core.Graph, i int) string {
	t.Helper()
	id, err := g.AddNode(Slot(i))
	require.NoError(t, err, "AddNode(slot %d)", i)
	return id
}

// MustNodes adds n nodes at Slot(0..n-1).
func MustNodes(t testing.TB, g *core.Graph, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = MustNode(t, g, i)
	}
	return ids
}

// MustEdge adds an edge and fails the test on error.
func MustEdge(t testing.TB, g *core.Graph, a, b string, w int64) string {
	t.Helper()
	eid, err := g.AddEdge(a, b, w)
	require.NoError(t, err, "AddEdge(%s,%s)", a, b)
	return eid
}

// MustValid asserts every structural invariant holds.
func MustValid(t testing.TB, g *core.Graph) {
	t.Helper()
	require.NoError(t, g.Validate())
}

// NewCycle4 builds the undirected cycle A–B–C–D–A and returns the node IDs in order.
func NewCycle4(t testing.TB) (*core.Graph, []string) {
	t.Helper()
	g := core.NewGraph()
	ids := MustNodes(t, g, 4)
	for i := range ids {
		MustEdge(t, g, ids[i], ids[(i+1)%len(ids)], Weight1)
	}
	return g, ids
}
