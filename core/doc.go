// SPDX-License-Identifier: MIT

// Package core provides the undirected, cost-bearing graph that models a
// maze: a fixed set of nodes named 0..n-1 and an append-only catalog of
// edges, each carrying an integer coin cost and an opaque label.
//
// Storage model:
//
//   - Nodes and edges live in flat arenas owned by the Graph and are
//     referenced by integer identity (node name, edge ID).
//   - Every node owns an incidence list of edge IDs in insertion order.
//     An edge appears in the lists of both endpoints; a self-loop appears
//     twice in the list of its single endpoint.
//   - The structure is multigraph-capable. InsertEdge rejects a second
//     edge between a connected pair unless WithMultiEdges is set.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph                  // O(n)
//	InsertEdge(u, v, cost int, label string) (*Edge, error)     // O(deg(u))
//	GetNode(name int) (*Node, error)                            // O(1)
//	IncidentEdges(u int) (EdgeSeq, error)                       // O(1), lazy
//	GetEdge(u, v int) (*Edge, bool, error)                      // O(deg(u))
//	AreAdjacent(u, v int) (bool, error)                         // O(deg(u))
//
// Three outcomes are kept apart everywhere: a value, an explicit empty
// result (EdgeSeq.Empty, ok == false), and an error for a node identity
// that does not belong to the graph.
//
// Errors:
//
//	ErrUnknownNode   - operation referenced a node outside the graph
//	ErrDuplicateEdge - second edge between an already connected pair
//	ErrNodeNotFound  - GetNode name outside [0, n)
//	ErrBadCost       - negative edge cost
package core
