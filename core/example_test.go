package core_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph and place three nodes on the canvas:
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{X: 0, Y: 0})
	b, _ := g.AddNode(core.Point{X: 100, Y: 0})
	c, _ := g.AddNode(core.Point{X: 50, Y: 100})

	// 2) Connect them into a triangle:
	g.AddEdge(a, b, 1)
	g.AddEdge(b, c, 2)
	g.AddEdge(c, a, 3)

	start, _ := g.StartNode()
	fmt.Println("Nodes:", g.NodeIDs())
	fmt.Println("Start:", start)
	fmt.Println("Edge B-A exists?", g.EdgeBetween(b, a) != nil)

	// 3) Remove a node and its edges:
	g.RemoveNode(b)
	fmt.Println("After removing B:", g.NodeIDs(), "edges:", g.EdgeCount())

	// Output:
	// Nodes: [node_0 node_1 node_2]
	// Start: node_0
	// Edge B-A exists? true
	// After removing B: [node_0 node_2] edges: 1
}

// ExampleGraph_AddNode shows that overlapping placements are rejected.
func ExampleGraph_AddNode() {
	g := core.NewGraph()
	g.AddNode(core.Point{X: 0, Y: 0})
	_, err := g.AddNode(core.Point{X: 10, Y: 10})
	fmt.Println(err != nil, g.NodeCount())

	// Output:
	// true 1
}

// ExampleGraph_RemoveNode shows start node reassignment.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Point{X: 0, Y: 0})
	g.AddNode(core.Point{X: 100, Y: 0})

	g.RemoveNode(a)
	start, _ := g.StartNode()
	n, _ := g.Node(start)
	fmt.Println(start, n.State, n.Distance)

	// Output:
	// node_1 start 0
}

// ExampleGraph_Reset shows the canonical post-edit state.
func ExampleGraph_Reset() {
	g := core.NewGraph(core.WithDirected(true))
	a, _ := g.AddNode(core.Point{X: 0, Y: 0})
	b, _ := g.AddNode(core.Point{X: 100, Y: 0})
	eid, _ := g.AddEdge(a, b, 4)

	e, _ := g.Edge(eid)
	e.State = core.EdgeDiscovered
	g.ToggleNode(b)

	g.Reset()
	s := g.Snapshot()
	fmt.Println(s.CountNodes(core.NodeStart), s.CountNodes(core.NodeUndiscovered), s.CountEdges(core.EdgeUndiscovered), s.Toggled == nil)

	// Output:
	// 1 1 1 true
}
