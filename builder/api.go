// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// api.go — the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order, each on its own stretch of the canvas.
//   - Functional options (BuilderOption) resolve into a builderConfig value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before adding anything,
// lay their nodes out from cfg.origin, and return wrapped sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Each constructor after the first is placed to the right of everything built
// so far. Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor plus O(V) per constructor for placement.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		step := cfg
		step.origin = nextOrigin(g, cfg)
		if err := fn(g, step); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, placing them to the
// right of its current nodes. It is the building block for adding a fixture
// to a graph that is being edited.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		step := cfg
		step.origin = nextOrigin(g, cfg)
		if err := fn(g, step); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}
	return nil
}
