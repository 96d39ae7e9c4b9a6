// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/coinmaze/builder"
	"github.com/katalvlaran/coinmaze/core"
	"github.com/katalvlaran/coinmaze/maze"
)

// sampleGrid describes a 4×3 maze ("$3" is a door costing three coins):
//
//	S ─ 1 ─ 2   3
//	│       $3  │
//	4   5 ─ 6 ─ 7
//	│   │       │
//	8 ─ 9  10   X
func sampleGrid(t *testing.T, opts ...builder.Option) *builder.Grid {
	t.Helper()
	gr, err := builder.NewGrid(4, 3, opts...)
	require.NoError(t, err)

	gr.Right(0, 0, builder.Corridor()).Right(0, 1, builder.Corridor())
	gr.Down(0, 0, builder.Corridor()).Down(0, 2, builder.Door(3)).Down(0, 3, builder.Corridor())
	gr.Right(1, 1, builder.Corridor()).Right(1, 2, builder.Open())
	gr.Down(1, 0, builder.Corridor()).Down(1, 1, builder.Corridor()).Down(1, 3, builder.Corridor())
	gr.Right(2, 0, builder.Corridor())
	gr.SetEntrance(0, 0).SetExit(2, 3)

	return gr
}

func TestNewGrid_BadSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		gr, err := builder.NewGrid(dims[0], dims[1])
		assert.Nil(t, gr)
		assert.ErrorIs(t, err, builder.ErrBadSize)
	}
}

func TestGrid_NodeAndCell(t *testing.T) {
	gr, err := builder.NewGrid(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, gr.Width())
	assert.Equal(t, 3, gr.Length())

	id, ok := gr.Node(2, 1)
	require.True(t, ok)
	assert.Equal(t, 9, id)
	row, col := gr.Cell(id)
	assert.Equal(t, [2]int{2, 1}, [2]int{row, col})

	_, ok = gr.Node(3, 0)
	assert.False(t, ok)
	_, ok = gr.Node(0, 4)
	assert.False(t, ok)
}

func TestGrid_BuildShape(t *testing.T) {
	m, err := sampleGrid(t).SetCoins(3).Build()
	require.NoError(t, err)

	g, err := m.Graph()
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	assert.Equal(t, 11, g.EdgeCount())
	assert.Equal(t, 0, m.Entrance())
	assert.Equal(t, 11, m.Exit())
	assert.Equal(t, 3, m.Coins())

	adj, err := g.AreAdjacent(2, 3)
	require.NoError(t, err)
	assert.False(t, adj, "walls are never inserted")

	labels := map[[2]int]string{{0, 1}: "c", {2, 6}: "3", {6, 7}: "o"}
	for ends, want := range labels {
		e, ok, err := g.GetEdge(ends[0], ends[1])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, e.Label())
	}
	door, _, err := g.GetEdge(6, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, door.Cost())
}

func TestGrid_BuildIncidenceOrder(t *testing.T) {
	m, err := sampleGrid(t).Build()
	require.NoError(t, err)
	g, err := m.Graph()
	require.NoError(t, err)

	seq, err := g.IncidentEdges(6)
	require.NoError(t, err)
	var others []int
	for e := range seq.All() {
		others = append(others, e.Other(6))
	}
	assert.Equal(t, []int{2, 5, 7}, others, "east/south emission order, row-major")

	seq, err = g.IncidentEdges(10)
	require.NoError(t, err)
	assert.True(t, seq.Empty())
}

func TestGrid_SolveDependsOnCoins(t *testing.T) {
	cases := []struct {
		coins int
		want  []int
		spent int
	}{
		{3, []int{0, 1, 2, 6, 7, 11}, 3},
		{2, []int{0, 4, 8, 9, 5, 6, 7, 11}, 0},
	}
	for _, tc := range cases {
		m, err := sampleGrid(t).SetCoins(tc.coins).Build()
		require.NoError(t, err)

		p, ok := m.Solve()
		require.True(t, ok, "coins=%d", tc.coins)
		assert.Equal(t, tc.want, p.IDs(), "coins=%d", tc.coins)
		assert.Equal(t, tc.spent, p.Spent())
	}
}

func TestGrid_BuildCollectsAllProblems(t *testing.T) {
	gr, err := builder.NewGrid(4, 3)
	require.NoError(t, err)

	gr.Right(0, 3, builder.Corridor()).
		Down(2, 0, builder.Corridor()).
		Right(0, 0, builder.Door(-1)).
		SetEntrance(0, 0).
		SetCoins(-1)

	m, err := gr.Build()
	assert.Nil(t, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrOutOfGrid)
	assert.ErrorIs(t, err, builder.ErrBadPassage)
	assert.ErrorIs(t, err, builder.ErrNoExit)
	assert.ErrorIs(t, err, maze.ErrNegativeCoins)
	assert.NotErrorIs(t, err, builder.ErrNoEntrance)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestGrid_EndpointOutOfGrid(t *testing.T) {
	gr, err := builder.NewGrid(2, 2)
	require.NoError(t, err)
	_, err = gr.SetEntrance(-1, 0).SetExit(0, 2).Build()
	assert.ErrorIs(t, err, builder.ErrOutOfGrid)
	assert.ErrorIs(t, err, builder.ErrNoEntrance)
	assert.ErrorIs(t, err, builder.ErrNoExit)
}

func TestGrid_WallOverridesEarlierPassage(t *testing.T) {
	gr, err := builder.NewGrid(2, 1)
	require.NoError(t, err)
	m, err := gr.Right(0, 0, builder.Door(2)).Right(0, 0, builder.Wall()).
		SetEntrance(0, 0).SetExit(0, 1).SetCoins(5).Build()
	require.NoError(t, err)

	g, err := m.Graph()
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())
	_, ok := m.Solve()
	assert.False(t, ok)
}

func TestGrid_SingleCell(t *testing.T) {
	gr, err := builder.NewGrid(1, 1)
	require.NoError(t, err)
	m, err := gr.SetEntrance(0, 0).SetExit(0, 0).Build()
	require.NoError(t, err)

	p, ok := m.Solve()
	require.True(t, ok)
	assert.Equal(t, []int{0}, p.IDs())
}

func TestGrid_LoggerReachesMaze(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	m, err := sampleGrid(t, builder.WithLogger(zap.New(obs))).Build()
	require.NoError(t, err)

	built := logs.FilterMessage("maze built").All()
	require.Len(t, built, 1)
	assert.Equal(t, int64(11), built[0].ContextMap()["edges"])

	_, ok := m.Solve()
	require.True(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("path found").Len())
}

func TestPassage_Labels(t *testing.T) {
	cases := []struct {
		p        builder.Passage
		passable bool
		cost     int
		label    string
	}{
		{builder.Wall(), false, 0, "w"},
		{builder.Passage{}, false, 0, "w"},
		{builder.Corridor(), true, 0, "c"},
		{builder.Open(), true, 0, "o"},
		{builder.Door(7), true, 7, "7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.passable, tc.p.Passable(), tc.label)
		assert.Equal(t, tc.cost, tc.p.Cost(), tc.label)
		assert.Equal(t, tc.label, tc.p.Label())
	}
}

// Ensure the builder honours the core duplicate rule for the emitted pairs.
func TestGrid_EdgesAreUnique(t *testing.T) {
	m, err := sampleGrid(t).Build()
	require.NoError(t, err)
	g, err := m.Graph()
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for e := range g.Edges() {
		key := [2]int{min(e.First(), e.Second()), max(e.First(), e.Second())}
		assert.False(t, seen[key], "pair %v emitted twice", key)
		seen[key] = true
		_, err := g.InsertEdge(e.Second(), e.First(), 0, "c")
		assert.ErrorIs(t, err, core.ErrDuplicateEdge)
	}
}
