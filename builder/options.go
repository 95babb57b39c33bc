// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/algoviz/core"
)

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithSpacing sets the distance between adjacent node anchors. Panics if
// d <= 0. A spacing below about 2.83 node radii can make ring layouts collide,
// in which case the constructor returns core.ErrPositionOccupied.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithOrigin sets the top-left anchor of the first constructor's layout.
func WithOrigin(p core.Point) BuilderOption {
	return func(c *builderConfig) { c.origin = p }
}
