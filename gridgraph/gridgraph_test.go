package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, mismatched or badly weighted inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		weights []float64
		err     error
	}{
		{"ZeroWidth", 0, 2, nil, gridgraph.ErrEmptyGrid},
		{"ZeroHeight", 2, 0, nil, gridgraph.ErrEmptyGrid},
		{"ShortStorage", 2, 2, []float64{1, 1, 1}, gridgraph.ErrDimensionMismatch},
		{"LongStorage", 1, 1, []float64{1, 1}, gridgraph.ErrDimensionMismatch},
		{"Negative", 1, 1, []float64{-1}, gridgraph.ErrBadWeight},
		{"Fraction", 1, 1, []float64{0.5}, gridgraph.ErrBadWeight},
		{"NaN", 1, 1, []float64{math.NaN()}, gridgraph.ErrBadWeight},
		{"Inf", 1, 1, []float64{math.Inf(1)}, gridgraph.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.w, tc.h, tc.weights)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_CopiesInput ensures later mutation of the caller's slice has no effect.
func TestNewGrid_CopiesInput(t *testing.T) {
	weights := []float64{1, 1, 1, 1}
	g, err := gridgraph.NewGrid(2, 2, weights)
	require.NoError(t, err)

	weights[0] = 0
	assert.True(t, g.CanEnter(gridgraph.Coord{X: 0, Y: 0}))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.ParseASCII([]string{
		"#.#",
		".#.",
	})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.Truef(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.Falsef(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Movement Tests
//----------------------------------------------------------------------------//

func TestCanEnter(t *testing.T) {
	g, err := gridgraph.ParseASCII([]string{
		".#",
		"..",
	})
	require.NoError(t, err)

	assert.True(t, g.CanEnter(gridgraph.Coord{X: 0, Y: 0}))
	assert.False(t, g.CanEnter(gridgraph.Coord{X: 1, Y: 0}), "blocked")
	assert.False(t, g.CanEnter(gridgraph.Coord{X: 2, Y: 0}), "out of bounds")
	assert.False(t, g.CanEnter(gridgraph.Coord{X: 0, Y: -1}), "out of bounds")
}

// TestCanStep_NoCornerCutting verifies a diagonal needs both orthogonal cells open.
func TestCanStep_NoCornerCutting(t *testing.T) {
	g, err := gridgraph.ParseASCII([]string{
		"..#",
		"...",
		"#..",
	})
	require.NoError(t, err)
	center := gridgraph.Coord{X: 1, Y: 1}

	assert.True(t, g.CanStep(center, gridgraph.NorthWest))
	assert.True(t, g.CanStep(center, gridgraph.SouthEast))
	assert.False(t, g.CanStep(center, gridgraph.NorthEast), "destination blocked")
	assert.False(t, g.CanStep(center, gridgraph.SouthWest), "destination blocked")

	// (0,0) → (1,1) passes (1,0) and (0,1): both open.
	assert.True(t, g.CanStep(gridgraph.Coord{X: 0, Y: 0}, gridgraph.SouthEast))
	// (1,0) → (2,1) passes (2,0) which is blocked.
	assert.False(t, g.CanStep(gridgraph.Coord{X: 1, Y: 0}, gridgraph.SouthEast))
	// (0,1) → (1,2) passes (0,2) which is blocked.
	assert.False(t, g.CanStep(gridgraph.Coord{X: 0, Y: 1}, gridgraph.SouthEast))
}

// TestCanStep_Symmetric checks CanStep(a,d) == CanStep(a+d, reverse(d)) on a mixed grid.
func TestCanStep_Symmetric(t *testing.T) {
	g, err := gridgraph.ParseASCII([]string{
		"..#..",
		".#...",
		"...#.",
		"#....",
	})
	require.NoError(t, err)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a := gridgraph.Coord{X: x, Y: y}
			if !g.CanEnter(a) {
				continue
			}
			for _, d := range gridgraph.Directions {
				b := a.Add(d)
				if !g.CanEnter(b) {
					continue
				}
				assert.Equalf(t, g.CanStep(a, d), g.CanStep(b, d.Reverse()), "%v %v", a, d)
			}
		}
	}
}

func TestStepCost(t *testing.T) {
	g, err := gridgraph.FromWeights([][]float64{
		{1, 3},
		{2, 1},
	})
	require.NoError(t, err)
	o := gridgraph.Coord{X: 0, Y: 0}

	assert.Equal(t, 3.0, g.StepCost(o, gridgraph.Coord{X: 1, Y: 0}))
	assert.Equal(t, 2.0, g.StepCost(o, gridgraph.Coord{X: 0, Y: 1}))
	assert.InDelta(t, math.Sqrt2, g.StepCost(o, gridgraph.Coord{X: 1, Y: 1}), 1e-12)
	assert.False(t, g.Uniform())
	assert.Equal(t, 1.0, g.MinWeight())
}

func TestPathCost(t *testing.T) {
	g, err := gridgraph.ParseASCII([]string{
		"...",
		".#.",
		"...",
	})
	require.NoError(t, err)

	cost, err := g.PathCost([]gridgraph.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cost, 1e-12)

	cost, err = g.PathCost([]gridgraph.Coord{{0, 0}})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = g.PathCost([]gridgraph.Coord{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidStep, "onto a wall")

	_, err = g.PathCost([]gridgraph.Coord{{0, 0}, {2, 0}})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidStep, "not adjacent")

	_, err = g.PathCost([]gridgraph.Coord{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidStep, "cuts the wall corner")
}

func TestFingerprint(t *testing.T) {
	a, err := gridgraph.ParseASCII([]string{"..", "#."})
	require.NoError(t, err)
	b, err := gridgraph.FromFlags("0.0.1.0", 2)
	require.NoError(t, err)
	c, err := gridgraph.ParseASCII([]string{"..", ".#"})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)
}
