package jps

import "github.com/katalvlaran/jumpgrid/gridgraph"

// prune returns the directions worth scanning from node i at cell c.
// The result aliases the searcher's scratch buffer.
//
//   - start (no parent) or unpruned search: all 8 directions.
//   - axis arrival d: d, plus for each side whose lateral cell is a forced
//     neighbor, the forward diagonal on that side and the side itself.
//   - diagonal arrival d: its horizontal and vertical components, then d.
//     With corners uncuttable both back cells are open after the last
//     diagonal step, so a diagonal arrival never has forced neighbors.
func (s *Searcher) prune(i int, c gridgraph.Coord) []gridgraph.Direction {
	out := s.dirBuf[:0]
	n := &s.arena.nodes[i]
	if n.parent == noParent || !s.pruning {
		return append(out, gridgraph.Directions[:]...)
	}

	p := s.grid.At(n.parent)
	d := gridgraph.DirectionOf(c.X-p.X, c.Y-p.Y)
	if d.Diagonal() {
		h, v := d.Components()
		return append(out, h, v, d)
	}

	out = append(out, d)
	if s.forcedSide(c, d, d.Left()) {
		out = append(out, d.ForwardLeft(), d.Left())
		n.flags |= flagForced
	}
	if s.forcedSide(c, d, d.Right()) {
		out = append(out, d.ForwardRight(), d.Right())
		n.flags |= flagForced
	}

	return out
}

// forcedSide reports whether, travelling along axis direction d, the lateral
// neighbor of c on side is forced: open itself while the cell one step back
// from it is blocked.
func (s *Searcher) forcedSide(c gridgraph.Coord, d, side gridgraph.Direction) bool {
	lateral := c.Add(side)

	return s.grid.CanEnter(lateral) && !s.grid.CanEnter(lateral.Add(d.Reverse()))
}

// forced reports whether c has a forced neighbor on either side of d.
func (s *Searcher) forced(c gridgraph.Coord, d gridgraph.Direction) bool {
	return s.forcedSide(c, d, d.Left()) || s.forcedSide(c, d, d.Right())
}
