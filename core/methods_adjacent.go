// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Incidence enumeration.

package core

import "fmt"

// IncidentEdges returns the edges incident to u in insertion order.
//
// A node without edges yields an EdgeSeq whose Empty method reports true;
// that is a valid terminal state, not an error.
//
// Errors:
//   - ErrUnknownNode if u is not in the graph.
//
// Complexity: O(1); iteration is lazy.
func (g *Graph) IncidentEdges(u int) (EdgeSeq, error) {
	if !g.HasNode(u) {
		return EdgeSeq{}, fmt.Errorf("IncidentEdges(%d): %w", u, ErrUnknownNode)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return EdgeSeq{edges: g.edges, ids: g.incident[u]}, nil
}
