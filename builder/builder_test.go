// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
)

// requireNoOverlap asserts that no two node regions intersect.
func requireNoOverlap(t *testing.T, g *core.Graph) {
	t.Helper()
	ids := g.NodeIDs()
	for i := range ids {
		a, err := g.Bounds(ids[i])
		require.NoError(t, err)
		for j := i + 1; j < len(ids); j++ {
			b, err := g.Bounds(ids[j])
			require.NoError(t, err)
			require.False(t, a.Overlaps(b), "%s overlaps %s", ids[i], ids[j])
		}
	}
}

func TestConstructors_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		ctor               builder.Constructor
		wantV, wantE, dirE int
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, 5},
		{"Path(4)", builder.Path(4), 4, 3, 3},
		{"Star(5)", builder.Star(5), 5, 4, 8},
		{"Star(2)", builder.Star(2), 2, 1, 2},
		{"Wheel(6)", builder.Wheel(6), 6, 10, 15},
		{"Complete(5)", builder.Complete(5), 5, 10, 20},
		{"Complete(1)", builder.Complete(1), 1, 0, 0},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, 34},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0, 0},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15, 30},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, directed := range []bool{false, true} {
				g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, nil, tc.ctor)
				require.NoError(t, err)

				wantE := tc.wantE
				if directed {
					wantE = tc.dirE
				}
				assert.Equal(t, tc.wantV, g.NodeCount(), "directed=%v", directed)
				assert.Equal(t, wantE, g.EdgeCount(), "directed=%v", directed)
				require.NoError(t, g.Validate())
				requireNoOverlap(t, g)

				start, ok := g.StartNode()
				require.True(t, ok)
				assert.Equal(t, g.NodeIDs()[0], start)
				for _, e := range g.Edges() {
					assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
				}
			}
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.BuildGraph(nil, nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestSpacingTooSmall(t *testing.T) {
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSpacing(10)}, builder.Path(3))
	require.ErrorIs(t, err, core.ErrPositionOccupied)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) core.Snapshot {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 9)},
			builder.RandomSparse(10, 0.3))
		require.NoError(t, err)
		return g.Snapshot()
	}
	a, b := build(3), build(3)
	require.Empty(t, cmp.Diff(a, b))
	for _, e := range a.Edges {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestBuildGraph_ComposesSideBySide(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithOrigin(core.Point{X: 10, Y: 20}), builder.WithConstantWeight(7)},
		builder.Cycle(4), builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	requireNoOverlap(t, g)

	nodes := g.Nodes()
	require.Len(t, nodes, 7)
	var ringMaxX float64
	for _, n := range nodes[:4] {
		assert.GreaterOrEqual(t, n.Position.X, 10.0)
		assert.GreaterOrEqual(t, n.Position.Y, 20.0)
		if n.Position.X > ringMaxX {
			ringMaxX = n.Position.X
		}
	}
	for _, n := range nodes[4:] {
		assert.Greater(t, n.Position.X, ringMaxX)
		assert.Equal(t, 20.0, n.Position.Y)
	}
	assert.Equal(t, 4+2, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.EqualValues(t, 7, e.Weight)
	}
	// The two parts are not connected.
	assert.Nil(t, g.EdgeBetween(nodes[0].ID, nodes[4].ID))
}

func TestApply_ExtendsExistingGraph(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddNode(core.Point{X: 500, Y: 0})
	require.NoError(t, err)

	require.NoError(t, builder.Apply(g, nil, builder.Star(4)))
	assert.Equal(t, 5, g.NodeCount())
	start, _ := g.StartNode()
	assert.Equal(t, first, start)
	for _, n := range g.Nodes()[1:] {
		assert.Greater(t, n.Position.X, 500.0)
	}
	requireNoOverlap(t, g)

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
	require.ErrorIs(t, builder.Apply(g, nil, nil), builder.ErrConstructFailed)
}

func TestWheel_HubIsStartAndCentred(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(7))
	require.NoError(t, err)

	ids := g.NodeIDs()
	hub := ids[0]
	start, _ := g.StartNode()
	assert.Equal(t, hub, start)

	nb, err := g.Neighbors(hub)
	require.NoError(t, err)
	assert.Equal(t, ids[1:], nb)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithConstantWeight(-1) })
	assert.Panics(t, func() { builder.WithUniformWeight(5, 4) })
	assert.Panics(t, func() { builder.WithNormalWeight(0, -1) })
}
