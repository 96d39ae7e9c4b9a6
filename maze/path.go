// SPDX-License-Identifier: MIT

package maze

import (
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/coinmaze/core"
)

// Path is a solved route from entrance to exit, both inclusive.
type Path struct {
	nodes []*core.Node
	spent int
}

// Len returns the number of nodes on the path.
func (p *Path) Len() int { return len(p.nodes) }

// Spent returns the coins consumed along the path.
func (p *Path) Spent() int { return p.spent }

// Nodes yields the path nodes from entrance to exit. Each call starts over.
func (p *Path) Nodes() iter.Seq[*core.Node] {
	return func(yield func(*core.Node) bool) {
		for _, n := range p.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// IDs returns the node names in path order.
func (p *Path) IDs() []int {
	ids := make([]int, len(p.nodes))
	for i, n := range p.nodes {
		ids[i] = n.Name()
	}

	return ids
}

// String renders the path as "0 -> 1 -> 3".
func (p *Path) String() string {
	if p == nil {
		return "<no path>"
	}
	var b strings.Builder
	for i, n := range p.nodes {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(strconv.Itoa(n.Name()))
	}

	return b.String()
}
