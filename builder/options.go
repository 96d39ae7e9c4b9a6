// SPDX-License-Identifier: MIT
// Package: coinmaze/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     Build and Random themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Grid before it is built.
type Option func(*builderConfig)

// WithLogger sets the logger used for build diagnostics and handed to the
// resulting maze. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithRand provides an explicit RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG for Random.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDoorProbability sets the share of passable passages Random turns into
// doors. Panics outside [0,1].
func WithDoorProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithDoorProbability out of [0,1]")
	}
	return func(c *builderConfig) {
		c.doorProb = p
	}
}

// WithDoorCostFn overrides how Random prices doors. The function must return
// a nonnegative cost. Panics on nil.
func WithDoorCostFn(fn func(*rand.Rand) int) Option {
	if fn == nil {
		panic("builder: WithDoorCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.doorCostFn = fn
	}
}
