// Package scenario loads graph-editing scripts from YAML and replays them
// through the core mutators, standing in for the interactive editing layer.
//
// A scenario names its nodes; Build maps every name to the node ID core
// issues, so callers can address nodes by name afterwards:
//
//	directed: false
//	algorithm: dijkstra
//	start: A
//	nodes:
//	  - {name: A, x: 0,   y: 0}
//	  - {name: B, x: 100, y: 0}
//	edges:
//	  - {from: A, to: B, weight: 4}
//
// Loading and validation fail fast: an edge or start naming an undeclared
// node yields ErrUnknownNode before any graph is built. Errors from the file
// system and the YAML decoder are wrapped with github.com/pkg/errors.
package scenario
