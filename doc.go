// Package algoviz animates graph traversals step by step.
//
// What is algoviz?
//
//	A small engine behind a traversal visualiser: you place nodes and
//	weighted edges, pick a start node, choose BFS, DFS or Dijkstra, and watch
//	the algorithm colour the graph one step at a time while a display reads
//	consistent snapshots in parallel.
//
// Under the hood, everything is organized in flat subpackages:
//
//	core/        — Graph arena: nodes, edges, states, overlap and hit tests
//	bfs/ dfs/    — traversal engines that emit one Step per mutation batch
//	dijkstra/    — shortest paths with the same step protocol
//	algorithms/  — Algorithm enum and a single Run dispatcher
//	coordinator/ — background worker, pacing, cancel, events, metrics, spans
//	builder/     — laid-out fixtures: Cycle, Path, Star, Wheel, Complete, Grid
//	scenario/    — YAML scenario files mapped onto a Graph
//	config/      — defaults, YAML, .env and ALGOVIZ_* environment
//	render/      — palette, text frames and a rate-limited frame loop
//	cmd/algoviz  — the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	BFS from A discovers B and D (via A–B and D–A), then C via B–C;
//	the D–C edge is never discovered because C is already queued.
//
//	go install github.com/katalvlaran/algoviz/cmd/algoviz@latest
//	algoviz demo --shape cycle -n 4 --algorithm bfs
package algoviz
