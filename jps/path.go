package jps

import "github.com/katalvlaran/jumpgrid/gridgraph"

// reconstruct follows parent links from node i back to the start and returns
// the compressed start→i waypoint list.
func (s *Searcher) reconstruct(i int) Path {
	var rev []gridgraph.Coord
	for ; i != noParent; i = s.arena.nodes[i].parent {
		rev = append(rev, s.grid.At(i))
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return Compress(rev)
}

// Compress removes every interior point B of a consecutive triple (A, B, C)
// where A→B and B→C point the same way (cross product 0, dot product > 0).
// Endpoints are always kept. The input is not modified.
func Compress(points []gridgraph.Coord) Path {
	if len(points) <= 2 {
		return append(Path(nil), points...)
	}
	out := make(Path, 0, len(points))
	out = append(out, points[0])
	for k := 1; k < len(points)-1; k++ {
		a, b, c := out[len(out)-1], points[k], points[k+1]
		abx, aby := b.X-a.X, b.Y-a.Y
		bcx, bcy := c.X-b.X, c.Y-b.Y
		if abx*bcy-aby*bcx == 0 && abx*bcx+aby*bcy > 0 {
			continue
		}
		out = append(out, b)
	}

	return append(out, points[len(points)-1])
}

// Interpolate expands waypoints into every cell along the way, one step at a
// time. Consecutive waypoints on a common axis or 45° diagonal give straight
// runs; other pairs are joined diagonal-first.
func Interpolate(p Path) []gridgraph.Coord {
	if len(p) == 0 {
		return nil
	}
	cells := []gridgraph.Coord{p[0]}
	for k := 1; k < len(p); k++ {
		cur, to := p[k-1], p[k]
		for cur != to {
			cur = gridgraph.Coord{X: cur.X + sign(to.X-cur.X), Y: cur.Y + sign(to.Y-cur.Y)}
			cells = append(cells, cur)
		}
	}

	return cells
}

// Cells is Interpolate(p).
func (p Path) Cells() []gridgraph.Coord { return Interpolate(p) }

// Cost returns the cost of walking p cell by cell on g, or an error wrapping
// gridgraph.ErrInvalidStep when some step is illegal.
func (p Path) Cost(g *gridgraph.Grid) (float64, error) {
	return g.PathCost(Interpolate(p))
}

// Steps returns the number of single-cell moves along p.
func (p Path) Steps() int {
	n := 0
	for k := 1; k < len(p); k++ {
		n += max(abs(p[k].X-p[k-1].X), abs(p[k].Y-p[k-1].Y))
	}

	return n
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
