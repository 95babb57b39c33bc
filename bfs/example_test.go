package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
)

// ExampleBFS_grid demonstrates BFS layering on a 3×3 grid (9 nodes).
// Nodes are created row by row, so node_<3i+j> sits at row i, column j.
func ExampleBFS_grid() {
	g := core.NewGraph()
	ids := make([][]string, 3)
	for i := 0; i < 3; i++ {
		ids[i] = make([]string, 3)
		for j := 0; j < 3; j++ {
			ids[i][j], _ = g.AddNode(core.Point{X: float64(j) * 100, Y: float64(i) * 100})
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				g.AddEdge(ids[i][j], ids[i][j+1], 1)
			}
			if i+1 < 3 {
				g.AddEdge(ids[i][j], ids[i+1][j], 1)
			}
		}
	}

	res, err := bfs.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Expansion order follows non-decreasing Manhattan distance from node_0.
	fmt.Println(res.Order)
	// Output:
	// [node_0 node_1 node_3 node_2 node_4 node_6 node_5 node_7 node_8]
}

// ExampleBFS_steps prints every step of BFS over a triangle.
func ExampleBFS_steps() {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{X: 0, Y: 0})
	b, _ := g.AddNode(core.Point{X: 100, Y: 0})
	c, _ := g.AddNode(core.Point{X: 50, Y: 100})
	g.AddEdge(a, b, 2)
	g.AddEdge(b, c, 2)
	g.AddEdge(a, c, 7)

	_, err := bfs.BFS(g, bfs.WithOnStep(func(s core.Step) error {
		fmt.Println(s)
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _ := g.Node(c)
	fmt.Println("distance:", n.Distance, "path weight:", n.PathWeight)
	// Output:
	// current node_0
	// discover node_1 via edge_0
	// discover node_2 via edge_2
	// finish node_0
	// finish node_1
	// finish node_2
	// distance: 1 path weight: 7
}

// ExampleResult_PathTo finds the fewest-hop route in a small network.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	ids := make([]string, 6)
	for i := range ids {
		ids[i], _ = g.AddNode(core.Point{X: float64(i) * 100})
	}
	// Long route 0–1–2–3–5 and short route 0–4–5.
	g.AddEdge(ids[0], ids[1], 1)
	g.AddEdge(ids[1], ids[2], 1)
	g.AddEdge(ids[2], ids[3], 1)
	g.AddEdge(ids[3], ids[5], 1)
	g.AddEdge(ids[0], ids[4], 1)
	g.AddEdge(ids[4], ids[5], 1)

	res, _ := bfs.BFS(g)
	path, err := res.PathTo(ids[5])
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [node_0 node_4 node_5]
}
