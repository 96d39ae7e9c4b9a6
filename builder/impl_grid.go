// SPDX-License-Identifier: MIT
// Package: coinmaze/builder
//
// impl_grid.go - Grid: record passages and endpoints, then Build a maze.
//
// Contract:
//   • width ≥ 1 and length ≥ 1 (else ErrBadSize).
//   • Node ids are row-major: id = row*width + col.
//   • Recording methods never fail on the spot; problems are collected and
//     reported together by Build.
//   • Build emits edges row-major, East before South per cell, walls skipped.
//
// Complexity:
//   • Build: O(width*length) nodes and edge insertions.

package builder

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/coinmaze/core"
	"github.com/katalvlaran/coinmaze/maze"
)

// Grid is a mutable description of a rectangular maze.
type Grid struct {
	width, length int

	east  []Passage // east[id] connects id and id+1
	south []Passage // south[id] connects id and id+width

	entrance int
	exit     int
	coins    int

	cfg  builderConfig
	errs error
}

// NewGrid returns a width×length grid with walls everywhere, no entrance,
// no exit and a zero coin budget.
func NewGrid(width, length int, opts ...Option) (*Grid, error) {
	if width < minGridDim || length < minGridDim {
		return nil, fmt.Errorf("%s: width=%d, length=%d (each must be ≥ %d): %w",
			methodNewGrid, width, length, minGridDim, ErrBadSize)
	}
	n := width * length

	return &Grid{
		width:    width,
		length:   length,
		east:     make([]Passage, n),
		south:    make([]Passage, n),
		entrance: unset,
		exit:     unset,
		cfg:      newBuilderConfig(opts...),
	}, nil
}

// Width returns the number of columns.
func (gr *Grid) Width() int { return gr.width }

// Length returns the number of rows.
func (gr *Grid) Length() int { return gr.length }

// Node returns the node id of (row, col) and whether it lies in the grid.
func (gr *Grid) Node(row, col int) (int, bool) {
	if row < 0 || row >= gr.length || col < 0 || col >= gr.width {
		return unset, false
	}

	return row*gr.width + col, true
}

// Cell is the inverse of Node.
func (gr *Grid) Cell(id int) (row, col int) {
	return id / gr.width, id % gr.width
}

// Right records the passage between (row, col) and (row, col+1).
func (gr *Grid) Right(row, col int, p Passage) *Grid {
	id, ok := gr.Node(row, col)
	if !ok || col+1 >= gr.width {
		gr.fail(fmt.Errorf("%s(%d,%d): %w", methodRight, row, col, ErrOutOfGrid))
		return gr
	}
	if !p.valid() {
		gr.fail(fmt.Errorf("%s(%d,%d): door cost %d: %w", methodRight, row, col, p.Cost(), ErrBadPassage))
		return gr
	}
	gr.east[id] = p

	return gr
}

// Down records the passage between (row, col) and (row+1, col).
func (gr *Grid) Down(row, col int, p Passage) *Grid {
	id, ok := gr.Node(row, col)
	if !ok || row+1 >= gr.length {
		gr.fail(fmt.Errorf("%s(%d,%d): %w", methodDown, row, col, ErrOutOfGrid))
		return gr
	}
	if !p.valid() {
		gr.fail(fmt.Errorf("%s(%d,%d): door cost %d: %w", methodDown, row, col, p.Cost(), ErrBadPassage))
		return gr
	}
	gr.south[id] = p

	return gr
}

// SetEntrance marks (row, col) as the entrance.
func (gr *Grid) SetEntrance(row, col int) *Grid {
	id, ok := gr.Node(row, col)
	if !ok {
		gr.fail(fmt.Errorf("%s(%d,%d): %w", methodEntr, row, col, ErrOutOfGrid))
		return gr
	}
	gr.entrance = id

	return gr
}

// SetExit marks (row, col) as the exit.
func (gr *Grid) SetExit(row, col int) *Grid {
	id, ok := gr.Node(row, col)
	if !ok {
		gr.fail(fmt.Errorf("%s(%d,%d): %w", methodExit, row, col, ErrOutOfGrid))
		return gr
	}
	gr.exit = id

	return gr
}

// SetCoins sets the starting coin budget.
func (gr *Grid) SetCoins(coins int) *Grid {
	gr.coins = coins
	return gr
}

func (gr *Grid) fail(err error) {
	gr.errs = multierr.Append(gr.errs, err)
}

// Build validates the recorded description and returns the maze.
//
// Errors:
//   - every error recorded by Right/Down/SetEntrance/SetExit,
//   - ErrNoEntrance, ErrNoExit,
//   - maze.ErrNegativeCoins,
//
// all joined with multierr. Build does not modify the Grid, so it may be
// called again after fixes.
func (gr *Grid) Build() (*maze.Maze, error) {
	errs := gr.errs
	if gr.entrance == unset {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", methodBuild, ErrNoEntrance))
	}
	if gr.exit == unset {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", methodBuild, ErrNoExit))
	}
	if gr.coins < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%s: coins=%d: %w", methodBuild, gr.coins, maze.ErrNegativeCoins))
	}
	if errs != nil {
		return nil, errs
	}

	g := core.NewGraph(gr.width * gr.length)
	walls := 0
	for id := 0; id < g.NodeCount(); id++ {
		row, col := gr.Cell(id)
		if col+1 < gr.width {
			ok, err := insertPassage(g, id, id+1, gr.east[id])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
			if !ok {
				walls++
			}
		}
		if row+1 < gr.length {
			ok, err := insertPassage(g, id, id+gr.width, gr.south[id])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodBuild, err)
			}
			if !ok {
				walls++
			}
		}
	}

	gr.cfg.logger.Debug("maze built",
		zap.Int("width", gr.width),
		zap.Int("length", gr.length),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("walls", walls),
		zap.Int("entrance", gr.entrance),
		zap.Int("exit", gr.exit),
		zap.Int("coins", gr.coins),
	)

	return maze.New(g, gr.entrance, gr.exit, gr.coins, maze.WithLogger(gr.cfg.logger))
}

// insertPassage adds p between u and v unless it is a wall.
// It reports whether an edge was inserted.
func insertPassage(g *core.Graph, u, v int, p Passage) (bool, error) {
	if !p.Passable() {
		return false, nil
	}
	if _, err := g.InsertEdge(u, v, p.Cost(), p.Label()); err != nil {
		return false, err
	}

	return true, nil
}
