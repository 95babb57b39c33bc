package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
)

// ExampleDFS demonstrates a depth-first traversal on a diamond-shaped graph.
// Graph structure (directed, nodes created in alphabetical order):
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at A, preorder is A B D E F C and postorder is E F D B C A.
func ExampleDFS() {
	g := core.NewGraph(core.WithDirected(true))
	names := []string{"A", "B", "C", "D", "E", "F"}
	id := make(map[string]string, len(names))
	label := make(map[string]string, len(names))
	for i, name := range names {
		id[name], _ = g.AddNode(core.Point{X: float64(i) * 100})
		label[id[name]] = name
	}
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_, _ = g.AddEdge(id[edge.U], id[edge.V], 1)
	}

	res, err := dfs.DFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	names = names[:0]
	for _, v := range res.Order {
		names = append(names, label[v])
	}
	fmt.Println("pre: ", strings.Join(names, " "))
	names = names[:0]
	for _, v := range res.Finish {
		names = append(names, label[v])
	}
	fmt.Println("post:", strings.Join(names, " "))

	// Output:
	// pre:  A B D E F C
	// post: E F D B C A
}

// ExampleDFS_steps prints every step on a three-node path.
func ExampleDFS_steps() {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{X: 0})
	b, _ := g.AddNode(core.Point{X: 100})
	c, _ := g.AddNode(core.Point{X: 200})
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 1)

	_, _ = dfs.DFS(g, dfs.WithOnStep(func(s core.Step) error {
		fmt.Println(s)
		return nil
	}))
	// Output:
	// discover node_0
	// discover node_1 via edge_0
	// discover node_2 via edge_1
	// finish node_2
	// finish node_1
	// finish node_0
}
