// SPDX-License-Identifier: MIT
package render_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/render"
)

// ExampleFrame renders a path A–B–C after breadth-first search.
func ExampleFrame() {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{X: 0})
	b, _ := g.AddNode(core.Point{X: 100})
	c, _ := g.AddNode(core.Point{X: 200})
	_, _ = g.AddEdge(a, b, 2)
	_, _ = g.AddEdge(b, c, 3)
	_, _ = bfs.BFS(g)

	fmt.Print(render.Frame(g.Snapshot(), render.WithLabels(map[string]string{a: "A", b: "B", c: "C"})))
	// Output:
	// nodes=3 edges=2 start=A
	//   A        done         dist=0   weight=0
	//   B        done         dist=1   weight=2 parent=A
	//   C        done         dist=2   weight=5 parent=B
	//   edge_0   A -- B w=2 discovered
	//   edge_1   B -- C w=3 discovered
}
