// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lookup and degree queries.

package core

import "fmt"

// GetNode returns the node named name.
//
// Errors:
//   - ErrNodeNotFound if name is outside [0, n).
//
// Complexity: O(1).
func (g *Graph) GetNode(name int) (*Node, error) {
	if !g.HasNode(name) {
		return nil, fmt.Errorf("GetNode(%d): %w", name, ErrNodeNotFound)
	}

	return &g.nodes[name], nil
}

// Degree returns the length of u's incidence list. A self-loop counts twice.
//
// Errors:
//   - ErrUnknownNode if u is not in the graph.
//
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasNode(u) {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrUnknownNode)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incident[u]), nil
}
