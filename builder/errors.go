// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach the method name and parameters with %w.
//   • Core errors (e.g. core.ErrPositionOccupied for a too small spacing)
//     are wrapped, never replaced.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was used without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition, such as
// a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
