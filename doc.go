// Package coinmaze finds paths through grid mazes whose doors cost coins.
//
// A maze is an undirected graph: each cell is a node, each passable
// connection between neighboring cells is an edge with a coin cost and a
// label. A depth-first search with backtracking looks for a route from the
// entrance to the exit that never spends more coins than it carries.
//
// Packages:
//
//	core/    - Node, Edge and the arena-backed Graph
//	maze/    - Maze and the coin-constrained search
//	builder/ - grid description and seeded random grids
//
// Quick ASCII example:
//
//	S ─── 1
//	│     $5
//	2 ─── X
//
// With no coins the search goes S → 2 → X; with five it takes S → 1 → X,
// because edges are tried in insertion order and the first feasible path
// wins. No claim of cheapest or shortest path is made.
//
//	go get github.com/katalvlaran/coinmaze
package coinmaze
