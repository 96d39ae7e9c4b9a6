// SPDX-License-Identifier: MIT

package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinmaze/core"
	"github.com/katalvlaran/coinmaze/maze"
)

func TestNew_Validation(t *testing.T) {
	g := core.NewGraph(3)
	cases := []struct {
		name     string
		graph    *core.Graph
		entrance int
		exit     int
		coins    int
		want     error
	}{
		{"nil graph", nil, 0, 1, 0, maze.ErrGraphNil},
		{"entrance out of range", g, 3, 1, 0, maze.ErrEntranceNotFound},
		{"exit out of range", g, 0, -1, 0, maze.ErrExitNotFound},
		{"negative coins", g, 0, 1, -1, maze.ErrNegativeCoins},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.New(tc.graph, tc.entrance, tc.exit, tc.coins)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := maze.New(g, 0, 7, 0)
	assert.ErrorIs(t, err, core.ErrUnknownNode, "endpoint errors keep the core sentinel")
}

func TestMaze_Accessors(t *testing.T) {
	g := core.NewGraph(4)
	m, err := maze.New(g, 1, 3, 9)
	require.NoError(t, err)

	got, err := m.Graph()
	require.NoError(t, err)
	assert.Same(t, g, got)
	assert.Equal(t, 1, m.Entrance())
	assert.Equal(t, 3, m.Exit())
	assert.Equal(t, 9, m.Coins())
}

func TestMaze_GraphNotBuilt(t *testing.T) {
	var zero maze.Maze
	_, err := zero.Graph()
	assert.ErrorIs(t, err, maze.ErrGraphNotBuilt)

	var nilMaze *maze.Maze
	_, err = nilMaze.Graph()
	assert.ErrorIs(t, err, maze.ErrGraphNotBuilt)

	p, ok := zero.Solve()
	assert.Nil(t, p)
	assert.False(t, ok)
}
