// SPDX-License-Identifier: MIT
// Package: coinmaze/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w.
//   • Build joins independent problems with multierr; errors.Is still
//     matches every joined sentinel.

package builder

import "errors"

// ErrBadSize indicates a grid dimension below minGridDim.
var ErrBadSize = errors.New("builder: grid dimension too small")

// ErrOutOfGrid indicates a cell position or passage that leaves the grid.
var ErrOutOfGrid = errors.New("builder: position outside grid")

// ErrBadPassage indicates a passage that cannot become an edge.
var ErrBadPassage = errors.New("builder: invalid passage")

// ErrNoEntrance indicates Build was called before SetEntrance.
var ErrNoEntrance = errors.New("builder: entrance not set")

// ErrNoExit indicates Build was called before SetExit.
var ErrNoExit = errors.New("builder: exit not set")

// ErrNeedRandSource indicates Random was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")
