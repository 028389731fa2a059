package jps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

func newTestSearcher(t *testing.T, rows ...string) *Searcher {
	t.Helper()
	g, err := gridgraph.ParseASCII(rows)
	require.NoError(t, err)
	s, err := NewSearcher(g)
	require.NoError(t, err)
	s.Reset()

	return s
}

// arrive records that (x,y) was reached from (px,py) and returns its index.
func arrive(s *Searcher, x, y, px, py int) int {
	i := s.grid.Index(gridgraph.Coord{X: x, Y: y})
	s.arena.at(i).parent = s.grid.Index(gridgraph.Coord{X: px, Y: py})

	return i
}

func TestPrune_StartKeepsAll(t *testing.T) {
	s := newTestSearcher(t, "...", "...", "...")
	i := s.grid.Index(gridgraph.Coord{X: 1, Y: 1})
	s.arena.at(i)
	assert.Equal(t, gridgraph.Directions[:], s.prune(i, gridgraph.Coord{X: 1, Y: 1}))
}

func TestPrune_AxisNatural(t *testing.T) {
	s := newTestSearcher(t, "....", "....", "....")
	i := arrive(s, 1, 1, 0, 1)
	assert.Equal(t, []gridgraph.Direction{gridgraph.East}, s.prune(i, gridgraph.Coord{X: 1, Y: 1}))
	assert.False(t, s.arena.has(i, flagForced))
}

func TestPrune_AxisForced(t *testing.T) {
	// Moving east into (1,1): (0,0) is a wall behind the open (1,0).
	s := newTestSearcher(t,
		"#...",
		"....",
		"....",
	)
	c := gridgraph.Coord{X: 1, Y: 1}
	i := arrive(s, 1, 1, 0, 1)
	assert.True(t, s.forced(c, gridgraph.East))
	assert.Equal(t,
		[]gridgraph.Direction{gridgraph.East, gridgraph.NorthEast, gridgraph.North},
		s.prune(i, c),
	)
	assert.True(t, s.arena.has(i, flagForced))
}

func TestPrune_AxisForcedBothSides(t *testing.T) {
	s := newTestSearcher(t,
		"#...",
		"....",
		"#...",
	)
	c := gridgraph.Coord{X: 1, Y: 1}
	i := arrive(s, 1, 1, 0, 1)
	assert.Equal(t,
		[]gridgraph.Direction{
			gridgraph.East,
			gridgraph.NorthEast, gridgraph.North,
			gridgraph.SouthEast, gridgraph.South,
		},
		s.prune(i, c),
	)
}

func TestPrune_Diagonal(t *testing.T) {
	s := newTestSearcher(t, "....", "....", "....")
	i := arrive(s, 2, 2, 0, 0)
	assert.Equal(t,
		[]gridgraph.Direction{gridgraph.East, gridgraph.South, gridgraph.SouthEast},
		s.prune(i, gridgraph.Coord{X: 2, Y: 2}),
	)
}

func TestPrune_UnprunedOnWeightedGrid(t *testing.T) {
	s := newTestSearcher(t, "..2", "...")
	require.False(t, s.pruning)
	i := arrive(s, 1, 0, 0, 0)
	assert.Len(t, s.prune(i, gridgraph.Coord{X: 1, Y: 0}), 8)

	// The scanner stops after one step.
	jp, cost, ok := s.jump(gridgraph.Coord{X: 0, Y: 0}, gridgraph.East)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: 1, Y: 0}, jp)
	assert.Equal(t, 1.0, cost)
}

func TestJump_StopsAtForced(t *testing.T) {
	s := newTestSearcher(t,
		"...#..",
		"......",
	)
	s.goal = gridgraph.Coord{X: 5, Y: 0}
	// Walking east along row 1, (4,1) has (4,0) open with (3,0) a wall behind it.
	jp, cost, ok := s.jump(gridgraph.Coord{X: 0, Y: 1}, gridgraph.East)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: 4, Y: 1}, jp)
	assert.Equal(t, 4.0, cost)
}

func TestJump_DiagonalViaAxisScan(t *testing.T) {
	s := newTestSearcher(t,
		".....",
		".....",
		".....",
	)
	s.goal = gridgraph.Coord{X: 4, Y: 1}
	// The east scan from (1,1) meets the goal, so (1,1) is a jump point.
	jp, cost, ok := s.jump(gridgraph.Coord{X: 0, Y: 0}, gridgraph.SouthEast)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{X: 1, Y: 1}, jp)
	assert.InDelta(t, gridgraph.Sqrt2, cost, 1e-12)
}

func TestJump_DeadEnd(t *testing.T) {
	s := newTestSearcher(t, "..#")
	s.goal = gridgraph.Coord{X: 0, Y: 0}
	_, _, ok := s.jump(gridgraph.Coord{X: 0, Y: 0}, gridgraph.East)
	assert.False(t, ok)
	assert.Equal(t, 1, s.stats.Touched)
}
