// SPDX-License-Identifier: MIT
// Package: coinmaze/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • logger     = zap.NewNop()
//   • rng        = nil (Random refuses to run without one)
//   • doorProb   = defaultDoorProbability
//   • doorCostFn = uniform in [1, defaultMaxDoorCost]

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by Grid and Random.
type builderConfig struct {
	logger     *zap.Logger
	rng        *rand.Rand
	doorProb   float64
	doorCostFn func(*rand.Rand) int
}

// newBuilderConfig applies opts over the defaults; last option wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger:     zap.NewNop(),
		doorProb:   defaultDoorProbability,
		doorCostFn: uniformDoorCost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// uniformDoorCost draws a door cost in [1, defaultMaxDoorCost].
func uniformDoorCost(r *rand.Rand) int {
	return 1 + r.Intn(defaultMaxDoorCost)
}
