// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and pairwise edge queries: InsertEdge, GetEdge,
//       AreAdjacent, Edges.
// Determinism:
//   - Incidence lists keep insertion order; GetEdge and AreAdjacent scan
//     them front to back.
// Concurrency:
//   - InsertEdge holds mu for writing; queries hold it for reading.

package core

import (
	"fmt"
	"iter"
	"math"
)

// InsertEdge connects u and v with a new edge of the given cost and label
// and appends it to u's incidence list, then to v's.
//
// Errors:
//   - ErrUnknownNode if u or v is not in the graph.
//   - ErrBadCost if cost < 0.
//   - ErrDuplicateEdge if GetEdge(u, v) already finds an edge and the
//     graph was not built WithMultiEdges.
//
// Complexity: O(deg(u)) for the duplicate scan, O(1) amortized append.
func (g *Graph) InsertEdge(u, v, cost int, label string) (*Edge, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return nil, fmt.Errorf("InsertEdge(%d,%d): %w", u, v, ErrUnknownNode)
	}
	if cost < 0 {
		return nil, fmt.Errorf("InsertEdge(%d,%d): cost=%d: %w", u, v, cost, ErrBadCost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if _, ok := g.lookupEdge(u, v); ok {
			return nil, fmt.Errorf("InsertEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
		}
	}

	e := &Edge{id: len(g.edges), first: u, second: v, cost: cost, label: label}
	g.edges = append(g.edges, e)
	g.incident[u] = append(g.incident[u], e.id)
	g.incident[v] = append(g.incident[v], e.id)

	return e, nil
}

// GetEdge returns an edge connecting u and v.
//
// u's incidence list is scanned for edges joining {u, v} in either order.
// Among several candidates (parallel edges) the one minimizing
// min(deg(u), deg(v)) is selected; the comparison is strict, so equal
// scores keep the earlier candidate.
//
// Returns ok == false, with a nil error, when no edge joins u and v.
//
// Errors:
//   - ErrUnknownNode if u or v is not in the graph.
//
// Complexity: O(deg(u)).
func (g *Graph) GetEdge(u, v int) (*Edge, bool, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return nil, false, fmt.Errorf("GetEdge(%d,%d): %w", u, v, ErrUnknownNode)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.lookupEdge(u, v)

	return e, ok, nil
}

// lookupEdge implements GetEdge's selection. Caller holds mu.
func (g *Graph) lookupEdge(u, v int) (*Edge, bool) {
	var found *Edge
	best := math.MaxInt
	for _, eid := range g.incident[u] {
		e := g.edges[eid]
		if !e.Connects(u, v) {
			continue
		}
		score := min(len(g.incident[u]), len(g.incident[v]))
		if score < best {
			best = score
			found = e
		}
	}

	return found, found != nil
}

// AreAdjacent reports whether any edge in u's incidence list reaches v.
// The scan stops at the first match.
//
// Errors:
//   - ErrUnknownNode if u or v is not in the graph.
//
// Complexity: O(deg(u)).
func (g *Graph) AreAdjacent(u, v int) (bool, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false, fmt.Errorf("AreAdjacent(%d,%d): %w", u, v, ErrUnknownNode)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, eid := range g.incident[u] {
		if g.edges[eid].Connects(u, v) {
			return true, nil
		}
	}

	return false, nil
}

// Edges yields every edge in insertion (ID) order. The sequence covers the
// edges present when Edges was called.
func (g *Graph) Edges() iter.Seq[*Edge] {
	g.mu.RLock()
	snapshot := g.edges
	g.mu.RUnlock()

	return func(yield func(*Edge) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}
