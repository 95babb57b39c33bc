// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                (no randomness unless seeded)
//   • weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • spacing  = DefaultSpacing     (distance between adjacent nodes)
//   • origin   = (0,0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/algoviz/core"
)

// DefaultSpacing is the default distance between the anchors of two adjacent
// nodes. It clears core.DefaultNodeRadius at any angle.
const DefaultSpacing = 100.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn
	// Distance between adjacent node anchors.
	spacing float64
	// Top-left anchor of the layout; BuildGraph advances it per constructor.
	origin core.Point
}

// newBuilderConfig applies all options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
