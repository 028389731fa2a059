package gridgraph

// Nearest finds the walkable cell closest to c, measured in rings of
// Chebyshev distance, scanning every in-bounds cell regardless of walls.
// Used to snap an endpoint that sits on a wall or off the map.
//
// Behavior:
//  1. If c is walkable, it is returned unchanged.
//  2. c is clamped into the grid, then a BFS over all 8 neighbors runs
//     until the first walkable cell is dequeued.
//  3. Ties inside one ring resolve in compass order from North, so the
//     result is deterministic.
//
// Returns false when the grid has no walkable cell.
// Complexity: O(W·H) worst-case, Memory: O(W·H).
func (g *Grid) Nearest(c Coord) (Coord, bool) {
	if g.CanEnter(c) {
		return c, true
	}
	if g.walkable == 0 {
		return Coord{}, false
	}
	c = Coord{X: clamp(c.X, 0, g.Width-1), Y: clamp(c.Y, 0, g.Height-1)}

	seen := make([]bool, g.Size())
	queue := []int{g.Index(c)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.At(queue[qi])
		if g.CanEnter(u) {
			return u, true
		}
		for _, d := range Directions {
			v := u.Add(d)
			if !g.Contains(v) {
				continue
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return Coord{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
