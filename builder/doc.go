// SPDX-License-Identifier: MIT

// Package builder assembles coin mazes on a rectangular grid.
//
// A Grid of width×length cells maps to a core.Graph with one node per cell,
// named in row-major order (id = row*width + col). Between horizontally or
// vertically adjacent cells the caller records a Passage:
//
//	Wall()      impassable; never inserted into the graph
//	Corridor()  free connection, label "c"
//	Open()      free connection, label "o"
//	Door(k)     costs k coins, label is k in decimal
//
// Build validates everything recorded so far, reports every problem at
// once, and emits edges row by row: for each cell the east passage first,
// then the south one. That order fixes the incidence order and therefore
// which path maze.Solve finds first.
//
// Random fills a grid from a seeded RNG for fixtures and benchmarks.
//
// Errors:
//
//	ErrBadSize         width or length below 1
//	ErrOutOfGrid       passage or endpoint outside the grid
//	ErrBadPassage      door with a negative cost
//	ErrNoEntrance      Build without SetEntrance
//	ErrNoExit          Build without SetExit
//	ErrNeedRandSource  Random without WithSeed/WithRand
//	ErrInvalidProbability  wall probability outside [0,1]
package builder
