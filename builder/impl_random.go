// SPDX-License-Identifier: MIT
// Package: coinmaze/builder
//
// impl_random.go - Random: seeded grid fixtures.
//
// Contract:
//   • Requires an RNG (WithSeed / WithRand), else ErrNeedRandSource.
//   • wallProb ∈ [0,1], else ErrInvalidProbability.
//   • Each East then South slot, row-major, draws: wall with wallProb,
//     otherwise a door with the configured door probability, otherwise a
//     corridor.
//   • Entrance is the top-left cell, exit the bottom-right; coins stay 0.
//
// Determinism: same seed and options ⇒ identical grid.

package builder

import "fmt"

// Random returns a width×length grid with randomly drawn passages.
func Random(width, length int, wallProb float64, opts ...Option) (*Grid, error) {
	gr, err := NewGrid(width, length, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	if wallProb < 0 || wallProb > 1 {
		return nil, fmt.Errorf("%s: wallProb=%v: %w", methodRandom, wallProb, ErrInvalidProbability)
	}
	rng := gr.cfg.rng
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	draw := func() Passage {
		if rng.Float64() < wallProb {
			return Wall()
		}
		if rng.Float64() < gr.cfg.doorProb {
			return Door(gr.cfg.doorCostFn(rng))
		}

		return Corridor()
	}
	for row := 0; row < length; row++ {
		for col := 0; col < width; col++ {
			if col+1 < width {
				gr.Right(row, col, draw())
			}
			if row+1 < length {
				gr.Down(row, col, draw())
			}
		}
	}
	gr.SetEntrance(0, 0).SetExit(length-1, width-1)

	return gr, nil
}
