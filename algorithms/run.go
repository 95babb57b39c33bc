package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
)

// Summary is the engine-independent outcome of a run.
type Summary struct {
	Algorithm Algorithm
	Start     string
	// Order is BFS expansion order, DFS preorder, or Dijkstra selection order.
	Order []string
	Steps int
}

// Run executes algo over g, calling hook after every mutation batch.
//
// The graph must not be touched by anyone else while Run is executing except
// from inside hook (the coordinator releases its lock there). On cancellation
// the context error is returned unwrapped together with the partial Summary.
func Run(ctx context.Context, g *core.Graph, algo Algorithm, hook core.StepFunc) (Summary, error) {
	sum := Summary{Algorithm: algo}
	switch algo {
	case BFS:
		res, err := bfs.BFS(g, bfs.WithContext(ctx), bfs.WithOnStep(hook))
		if res != nil {
			sum.Start, sum.Order, sum.Steps = res.Start, res.Order, res.Steps
		}
		return sum, err
	case DFS:
		res, err := dfs.DFS(g, dfs.WithContext(ctx), dfs.WithOnStep(hook))
		if res != nil {
			sum.Start, sum.Order, sum.Steps = res.Start, res.Order, res.Steps
		}
		return sum, err
	case Dijkstra:
		res, err := dijkstra.Dijkstra(g, dijkstra.WithContext(ctx), dijkstra.WithOnStep(hook))
		if res != nil {
			sum.Start, sum.Order, sum.Steps = res.Start, res.Order, res.Steps
		}
		return sum, err
	default:
		return sum, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
