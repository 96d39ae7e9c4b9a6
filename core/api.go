// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over graph shape and configuration.

package core

// NodeCount returns n, the number of nodes fixed at construction.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of inserted edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Multigraph reports whether InsertEdge accepts parallel edges.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// HasNode reports whether u names a node of this graph.
// Complexity: O(1).
func (g *Graph) HasNode(u int) bool {
	return u >= 0 && u < len(g.nodes)
}
