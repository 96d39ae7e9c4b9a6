// SPDX-License-Identifier: MIT

package maze

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/coinmaze/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	node  int
	coins int          // coins left on arrival
	edges core.EdgeSeq // incident edges of node
	next  int          // cursor into edges
}

// searchStats counts search events for diagnostics.
type searchStats struct {
	expanded   int
	backtracks int
	onBranch   int
	tooCostly  int
}

// Solve searches for a path from the entrance to the exit within budget.
// ok is false when no such path exists. Repeated calls on an unmodified
// maze return the same path.
func (m *Maze) Solve() (*Path, bool) {
	p, ok, _ := m.SolveContext(context.Background())

	return p, ok
}

// SolveContext is Solve with cancellation. The context is checked before
// every search step; on cancellation it returns ctx.Err().
func (m *Maze) SolveContext(ctx context.Context) (*Path, bool, error) {
	if m == nil || m.graph == nil {
		return nil, false, ErrGraphNotBuilt
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := m.opts.Logger.With(
		zap.Int("entrance", m.entrance),
		zap.Int("exit", m.exit),
		zap.Int("coins", m.coins),
	)

	var (
		stats  searchStats
		active = make([]bool, m.graph.NodeCount())
		stack  = make([]frame, 0, 16)
	)

	push := func(u, coins int) {
		active[u] = true
		stats.expanded++
		seq, err := m.graph.IncidentEdges(u)
		if err != nil {
			// An unreadable node is a dead end for this branch only.
			log.Warn("incident edges unavailable", zap.Int("node", u), zap.Error(err))
		}
		stack = append(stack, frame{node: u, coins: coins, edges: seq})
	}

	push(m.entrance, m.coins)
	done := ctx.Done()
	for len(stack) > 0 {
		if done != nil {
			select {
			case <-done:
				log.Debug("search cancelled", zap.Int("depth", len(stack)))
				return nil, false, ctx.Err()
			default:
			}
		}

		top := &stack[len(stack)-1]
		if top.node == m.exit {
			p := m.pathFrom(stack)
			log.Debug("path found",
				zap.Ints("path", p.IDs()),
				zap.Int("spent", p.Spent()),
				zap.Int("expanded", stats.expanded),
				zap.Int("backtracks", stats.backtracks),
			)

			return p, true, nil
		}

		advanced := false
		for top.next < top.edges.Len() {
			e := top.edges.At(top.next)
			top.next++

			nb := e.Other(top.node)
			if active[nb] {
				stats.onBranch++
				continue
			}
			if e.Cost() > top.coins {
				stats.tooCostly++
				continue
			}
			push(nb, top.coins-e.Cost())
			advanced = true

			break
		}
		if advanced {
			continue
		}

		// Exhausted: leave the active branch so other ancestors may revisit.
		active[top.node] = false
		stack = stack[:len(stack)-1]
		stats.backtracks++
	}

	log.Debug("no path",
		zap.Int("expanded", stats.expanded),
		zap.Int("backtracks", stats.backtracks),
		zap.Int("skipped_on_branch", stats.onBranch),
		zap.Int("skipped_too_costly", stats.tooCostly),
	)

	return nil, false, nil
}

// pathFrom converts the frame stack into a Path.
func (m *Maze) pathFrom(stack []frame) *Path {
	nodes := make([]*core.Node, len(stack))
	for i, f := range stack {
		// Frame nodes were validated by New or reached through the graph.
		n, _ := m.graph.GetNode(f.node)
		nodes[i] = n
	}

	return &Path{nodes: nodes, spent: m.coins - stack[len(stack)-1].coins}
}
