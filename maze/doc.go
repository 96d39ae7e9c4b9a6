// SPDX-License-Identifier: MIT

// Package maze finds a path through a coin-gated maze.
//
// A Maze couples a core.Graph with an entrance, an exit and a coin budget.
// Solve runs a depth-first search with chronological backtracking:
//
//   - Incident edges are tried in insertion order, so the first feasible
//     path in that order is the one returned.
//   - A neighbor is skipped while it is on the active branch, or when the
//     edge costs more coins than remain.
//   - Leaving a node on backtrack removes it from the active set, so it
//     may be reached again through another branch with a different budget.
//
// The search keeps an explicit stack of frames (node, coins left, incident
// edge view, cursor) instead of recursing, so deep mazes do not grow the
// goroutine stack. No optimality is claimed: the path found is feasible,
// not necessarily cheapest or shortest.
//
// "No path" is an ordinary outcome reported through ok == false.
//
// Complexity:
//
//   - Time:   exponential in the worst case (all simple paths within budget);
//     near-linear on tree-like mazes.
//   - Memory: O(V) for the frame stack and active set.
//
// Errors:
//
//   - ErrGraphNil          New got a nil graph
//   - ErrEntranceNotFound  entrance is not a node of the graph
//   - ErrExitNotFound      exit is not a node of the graph
//   - ErrNegativeCoins     coin budget below zero
//   - ErrGraphNotBuilt     Graph called on a Maze that New never built
//   - context errors       from SolveContext only
package maze
