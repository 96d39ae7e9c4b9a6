// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/coinmaze/core"
)

// Maze is a graph with a designated entrance, exit and coin budget.
// The graph must not be mutated while a search runs.
type Maze struct {
	graph    *core.Graph
	entrance int
	exit     int
	coins    int
	opts     Options
}

// New validates the endpoints and budget and returns a Maze over g.
func New(g *core.Graph, entrance, exit, coins int, opts ...Option) (*Maze, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(entrance) {
		return nil, fmt.Errorf("%w: %d: %w", ErrEntranceNotFound, entrance, core.ErrUnknownNode)
	}
	if !g.HasNode(exit) {
		return nil, fmt.Errorf("%w: %d: %w", ErrExitNotFound, exit, core.ErrUnknownNode)
	}
	if coins < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCoins, coins)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Maze{graph: g, entrance: entrance, exit: exit, coins: coins, opts: o}, nil
}

// Graph returns the underlying graph.
func (m *Maze) Graph() (*core.Graph, error) {
	if m == nil || m.graph == nil {
		return nil, ErrGraphNotBuilt
	}

	return m.graph, nil
}

// Entrance returns the entrance node name.
func (m *Maze) Entrance() int { return m.entrance }

// Exit returns the exit node name.
func (m *Maze) Exit() int { return m.exit }

// Coins returns the starting coin budget.
func (m *Maze) Coins() int { return m.coins }
