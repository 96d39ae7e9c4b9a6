// SPDX-License-Identifier: MIT

package builder

import "strconv"

type passageKind uint8

const (
	kindWall passageKind = iota
	kindCorridor
	kindOpen
	kindDoor
)

// Passage describes the connection between two adjacent cells.
// The zero value is a wall.
type Passage struct {
	kind passageKind
	cost int
}

// Wall returns an impassable passage.
func Wall() Passage { return Passage{kind: kindWall} }

// Corridor returns a free passage labelled "c".
func Corridor() Passage { return Passage{kind: kindCorridor} }

// Open returns a free passage labelled "o".
func Open() Passage { return Passage{kind: kindOpen} }

// Door returns a passage that costs the given number of coins.
func Door(cost int) Passage { return Passage{kind: kindDoor, cost: cost} }

// Passable reports whether the passage becomes an edge.
func (p Passage) Passable() bool { return p.kind != kindWall }

// Cost returns the coin cost; zero for everything but doors.
func (p Passage) Cost() int { return p.cost }

// Label returns the edge label the passage is inserted with.
func (p Passage) Label() string {
	switch p.kind {
	case kindCorridor:
		return labelCorridor
	case kindOpen:
		return labelOpen
	case kindDoor:
		return strconv.Itoa(p.cost)
	default:
		return labelWall
	}
}

func (p Passage) valid() bool {
	return p.kind != kindDoor || p.cost >= 0
}
