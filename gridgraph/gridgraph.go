// Package gridgraph provides the walkability grid shared by the search
// packages. Cells with weight 0 are blocked; cells with weight ≥ 1 are
// walkable and the weight scales the cost of stepping onto them.
package gridgraph

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// NewGrid constructs a Grid from row-major weights.
// It copies the input to ensure immutability.
// Returns ErrEmptyGrid if width or height is not positive,
// ErrDimensionMismatch if len(weights) != width*height,
// ErrBadWeight if any weight is not 0 or a finite value ≥ 1.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(width, height int, weights []float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(weights) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrDimensionMismatch, len(weights), width, height)
	}
	cells := make([]float64, len(weights))
	copy(cells, weights)

	g := &Grid{Width: width, Height: height, weights: cells, uniform: true, minWeight: 1}
	first := true
	for i, w := range cells {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 || (w > 0 && w < 1) {
			x, y := g.Coordinate(i)
			return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrBadWeight, w, x, y)
		}
		if w == Blocked {
			continue
		}
		g.walkable++
		if first {
			g.minWeight = w
			first = false
			continue
		}
		if w != g.minWeight {
			g.uniform = false
		}
		if w < g.minWeight {
			g.minWeight = w
		}
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// CanEnter reports whether c is in bounds and walkable.
// Complexity: O(1).
func (g *Grid) CanEnter(c Coord) bool {
	return g.InBounds(c.X, c.Y) && g.weights[c.Y*g.Width+c.X] != Blocked
}

// CanStep reports whether one step from c in direction d is legal:
// the destination must be enterable and, for diagonals, both orthogonally
// adjacent cells must be enterable too (no corner cutting).
func (g *Grid) CanStep(c Coord, d Direction) bool {
	if !g.CanEnter(c.Add(d)) {
		return false
	}
	if !d.Diagonal() {
		return true
	}
	h, v := d.Components()

	return g.CanEnter(c.Add(h)) && g.CanEnter(c.Add(v))
}

// StepCost returns the cost of moving from one cell onto an adjacent one:
// 1 for axis moves, √2 for diagonal moves, times the weight of to.
// The caller is responsible for adjacency; see CanStep.
func (g *Grid) StepCost(from, to Coord) float64 {
	w := g.weights[to.Y*g.Width+to.X]
	if from.X != to.X && from.Y != to.Y {
		return Sqrt2 * w
	}

	return w
}

// Weight returns the weight of c, or Blocked when c is out of bounds.
func (g *Grid) Weight(c Coord) float64 {
	if !g.Contains(c) {
		return Blocked
	}

	return g.weights[c.Y*g.Width+c.X]
}

// Uniform reports whether every walkable cell has the same weight.
func (g *Grid) Uniform() bool { return g.uniform }

// MinWeight returns the smallest walkable weight (1 when nothing is walkable).
func (g *Grid) MinWeight() float64 { return g.minWeight }

// Walkable returns the number of walkable cells.
func (g *Grid) Walkable() int { return g.walkable }

// Size returns Width×Height.
func (g *Grid) Size() int { return g.Width * g.Height }

// Index maps c to its row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At converts a row-major index back to a Coord.
func (g *Grid) At(idx int) Coord {
	x, y := g.Coordinate(idx)

	return Coord{X: x, Y: y}
}

// PathCost sums StepCost over consecutive cells, checking that every pair is
// one legal step apart. A single cell costs 0.
func (g *Grid) PathCost(cells []Coord) (float64, error) {
	if len(cells) == 0 {
		return 0, nil
	}
	if !g.CanEnter(cells[0]) {
		return 0, fmt.Errorf("%w: %v is not walkable", ErrInvalidStep, cells[0])
	}
	total := 0.0
	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		d := DirectionOf(b.X-a.X, b.Y-a.Y)
		if d == NoDirection || a.Add(d) != b || !g.CanStep(a, d) {
			return 0, fmt.Errorf("%w: %v→%v", ErrInvalidStep, a, b)
		}
		total += g.StepCost(a, b)
	}

	return total, nil
}

// Fingerprint returns a hex SHA-256 digest of the dimensions and weights.
// Equal grids have equal fingerprints; it is computed once and memoized.
func (g *Grid) Fingerprint() string {
	g.fpOnce.Do(func() {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(g.Width))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(g.Height))
		h.Write(buf[:])
		for _, w := range g.weights {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(w))
			h.Write(buf[:])
		}
		g.fingerprint = hex.EncodeToString(h.Sum(nil))
	})

	return g.fingerprint
}
