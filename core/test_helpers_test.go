// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinmaze/core"
)

// Common costs used across core tests.
const (
	Cost0 = 0
	Cost1 = 1
	Cost5 = 5
)

// squareGrid builds the 2×2 row-major grid
//
//	0 ─ 1
//	│   │
//	2 ─ 3
//
// with the given costs for 0-1, 0-2, 1-3, 2-3.
func squareGrid(t testing.TB, c01, c02, c13, c23 int) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	for _, e := range []struct{ u, v, cost int }{
		{0, 1, c01}, {0, 2, c02}, {1, 3, c13}, {2, 3, c23},
	} {
		_, err := g.InsertEdge(e.u, e.v, e.cost, "c")
		require.NoError(t, err)
	}

	return g
}

// collect drains an EdgeSeq into (first, second) pairs.
func collect(seq core.EdgeSeq) [][2]int {
	var out [][2]int
	for e := range seq.All() {
		out = append(out, [2]int{e.First(), e.Second()})
	}

	return out
}
