// SPDX-License-Identifier: MIT
package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := g.AddNode(core.Point{X: float64(i) * 100})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	for i := range ids {
		_, err := g.AddEdge(ids[i], ids[(i+1)%3], int64(i+1))
		require.NoError(t, err)
	}
	return g
}

func TestMetrics_FinishedRun(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	c := New(triangle(t), WithPacing(0), WithMetrics(m))

	_, err := c.Run(context.Background(), algorithms.Dijkstra)
	require.NoError(t, err)
	require.NoError(t, c.Wait(context.Background()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("dijkstra", "finished")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.steps.WithLabelValues("dijkstra")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.running))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_CancelledAndRejected(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	c := New(triangle(t), WithPacing(time.Hour), WithMetrics(m))

	_, err := c.Run(context.Background(), algorithms.BFS)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.running))

	_, err = c.Run(context.Background(), algorithms.DFS)
	require.ErrorIs(t, err, ErrAlreadyRunning)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("dfs")))

	c.Cancel()
	require.NoError(t, c.Wait(context.Background()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("bfs", "cancelled")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.runs.WithLabelValues("bfs", "finished")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.running))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.runStarted()
		m.step("bfs")
		m.runRejected("bfs")
		m.runEnded("bfs", "finished", time.Second)
	})
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "finished", outcome(Finished, nil))
	assert.Equal(t, "cancelled", outcome(Cancelled, nil))
	assert.Equal(t, "failed", outcome(Finished, assert.AnError))
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	h := newHub()
	a, unsubA := h.subscribe(4)
	b, unsubB := h.subscribe(0)
	defer unsubB()

	assert.Equal(t, 0, h.publish(Event{Seq: 1}))
	assert.Equal(t, 1, h.publish(Event{Seq: 2})) // b holds one event
	unsubA()
	assert.Equal(t, 1, h.publish(Event{Seq: 3}))

	var seqs []uint64
	for ev := range a {
		seqs = append(seqs, ev.Seq)
	}
	assert.Equal(t, []uint64{1, 2}, seqs)
	assert.Len(t, b, 1)
}
