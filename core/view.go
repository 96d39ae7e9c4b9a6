// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: EdgeSeq, a read-only view over one incidence list.

package core

import "iter"

// EdgeSeq is a lazy, finite and restartable view of an incidence list.
//
// The view captures the list length at creation. Incidence lists and the
// edge arena are append-only, so later insertions never alter a view that
// has already been handed out.
type EdgeSeq struct {
	edges []*Edge
	ids   []int
}

// Empty reports whether the node had no incident edges.
func (s EdgeSeq) Empty() bool { return len(s.ids) == 0 }

// Len returns the number of edges in the view.
func (s EdgeSeq) Len() int { return len(s.ids) }

// At returns the i-th edge of the view, 0 <= i < Len().
func (s EdgeSeq) At(i int) *Edge { return s.edges[s.ids[i]] }

// All yields the edges in insertion order. Each call starts over.
func (s EdgeSeq) All() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, eid := range s.ids {
			if !yield(s.edges[eid]) {
				return
			}
		}
	}
}
