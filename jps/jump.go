package jps

import "github.com/katalvlaran/jumpgrid/gridgraph"

// jump walks from c in direction d and returns the first jump point together
// with the cost of the cells walked, or ok=false when the walk leaves the
// grid, hits a wall, or would cut a corner.
//
// A cell is a jump point when it is the goal, when (axis moves) it has a
// forced neighbor, or when (diagonal moves) an axis scan along either
// component of d finds a jump point. Unpruned searches stop after one step.
func (s *Searcher) jump(c gridgraph.Coord, d gridgraph.Direction) (gridgraph.Coord, float64, bool) {
	cost := 0.0
	diagonal := d.Diagonal()
	h, v := d.Components()
	for {
		if !s.grid.CanStep(c, d) {
			return c, 0, false
		}
		next := c.Add(d)
		cost += s.grid.StepCost(c, next)
		c = next
		s.touch(c)

		if c == s.goal || !s.pruning {
			return c, cost, true
		}
		if diagonal {
			if s.scanAxis(c, h) || s.scanAxis(c, v) {
				return c, cost, true
			}
		} else if s.forced(c, d) {
			return c, cost, true
		}
	}
}

// scanAxis reports whether walking from c along axis direction d meets the
// goal or a cell with a forced neighbor before a wall or the border.
func (s *Searcher) scanAxis(c gridgraph.Coord, d gridgraph.Direction) bool {
	for s.grid.CanStep(c, d) {
		c = c.Add(d)
		s.touch(c)
		if c == s.goal || s.forced(c, d) {
			return true
		}
	}

	return false
}

func (s *Searcher) touch(c gridgraph.Coord) {
	if s.arena.touch(s.grid.Index(c)) {
		s.stats.Touched++
	}
}
