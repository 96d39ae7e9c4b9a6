// SPDX-License-Identifier: MIT
// Package core defines the Node, Edge and Graph types, the sentinel errors,
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a node identity
	// that does not belong to this graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateEdge indicates an edge already connects the given pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrNodeNotFound indicates GetNode was asked for a name outside [0, n).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadCost indicates a negative edge cost.
	ErrBadCost = errors.New("core: edge cost must be nonnegative")
)

// Node is a maze cell. Its name is fixed at construction; the mark is free
// for external algorithms and is never touched by the graph itself.
type Node struct {
	name   int
	marked bool
}

// Name returns the node identity in [0, n).
func (n *Node) Name() int { return n.name }

// Mark sets the node mark.
func (n *Node) Mark(mark bool) { n.marked = mark }

// IsMarked reports the node mark.
func (n *Node) IsMarked() bool { return n.marked }

// Edge is an undirected connection between two nodes.
//
// The endpoints are stored as an ordered pair for identification only;
// traversal treats them symmetrically. Cost and label may be updated in
// place, endpoints never change.
type Edge struct {
	id     int
	first  int
	second int
	cost   int
	label  string
}

// ID returns the edge's arena index.
func (e *Edge) ID() int { return e.id }

// First returns the first endpoint given to InsertEdge.
func (e *Edge) First() int { return e.first }

// Second returns the second endpoint given to InsertEdge.
func (e *Edge) Second() int { return e.second }

// Cost returns the number of coins needed to traverse the edge.
func (e *Edge) Cost() int { return e.cost }

// SetCost replaces the traversal cost. Negative values are rejected.
func (e *Edge) SetCost(cost int) error {
	if cost < 0 {
		return ErrBadCost
	}
	e.cost = cost

	return nil
}

// Label returns the opaque edge label.
func (e *Edge) Label() string { return e.label }

// SetLabel replaces the edge label.
func (e *Edge) SetLabel(label string) { e.label = label }

// Other returns the endpoint opposite to u. For a self-loop it returns u.
func (e *Edge) Other(u int) int {
	if e.first == u {
		return e.second
	}

	return e.first
}

// Connects reports whether the edge joins u and v in either order.
func (e *Edge) Connects(u, v int) bool {
	return (e.first == u && e.second == v) || (e.first == v && e.second == u)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges lets InsertEdge add parallel edges between a connected pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph owns all nodes and edges of a maze.
//
// mu guards the edge arena and the incidence lists. The node arena is
// sized once in NewGraph and never reallocated, so node handles stay
// valid for the graph's lifetime.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool

	nodes    []Node
	edges    []*Edge
	incident [][]int // node name → edge IDs in insertion order
}

// NewGraph creates a graph with n nodes named 0..n-1 and no edges.
// A negative n yields an empty graph.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		nodes:    make([]Node, n),
		incident: make([][]int, n),
	}
	for i := range g.nodes {
		g.nodes[i].name = i
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
