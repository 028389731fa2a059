package gridgraph

import (
	"fmt"
	"sync"
)

// Blocked is the weight of a cell that cannot be entered.
const Blocked = 0.0

// Sqrt2 is the base cost of a diagonal step.
const Sqrt2 = 1.4142135623730951

// Coord addresses a cell: X is the column, Y the row, origin at the top-left corner.
type Coord struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// Add returns the neighbor of c in direction d.
func (c Coord) Add(d Direction) Coord {
	o := dirTable[d&7]

	return Coord{X: c.X + o.dx, Y: c.Y + o.dy}
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable rectangular grid of cell weights.
// Width and Height define dimensions; weights are stored row-major, y*Width + x.
// A Grid is safe for concurrent readers.
type Grid struct {
	Width, Height int

	weights   []float64
	uniform   bool    // every walkable cell carries the same weight
	minWeight float64 // smallest walkable weight, 1 when nothing is walkable
	walkable  int

	fpOnce      sync.Once
	fingerprint string
}
