package gridgraph

// ConnectedComponents finds all regions of walkable cells that are mutually
// reachable through legal steps (see CanStep).
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	labels, count := g.label()
	comps := make([][]int, count)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}

	return comps
}

// Labels returns, for every cell index, the id of its component, or -1 for
// blocked cells, together with the number of components. Two walkable cells
// have equal labels exactly when a path exists between them.
func (g *Grid) Labels() ([]int, int) {
	return g.label()
}

// Reachable returns a row-major mask of the cells reachable from start,
// start included. The mask is all false when start is not walkable.
func (g *Grid) Reachable(start Coord) []bool {
	seen := make([]bool, g.Size())
	if !g.CanEnter(start) {
		return seen
	}
	i0 := g.Index(start)
	seen[i0] = true
	queue := []int{i0}
	for qi := 0; qi < len(queue); qi++ {
		u := g.At(queue[qi])
		for _, d := range Directions {
			if !g.CanStep(u, d) {
				continue
			}
			vi := g.Index(u.Add(d))
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return seen
}

func (g *Grid) label() ([]int, int) {
	labels := make([]int, g.Size())
	for i := range labels {
		labels[i] = -1
	}
	count := 0
	queue := make([]int, 0, 64)

	for i0, w := range g.weights {
		if w == Blocked || labels[i0] >= 0 {
			continue
		}
		// BFS to collect component
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.At(queue[qi])
			for _, d := range Directions {
				if !g.CanStep(u, d) {
					continue
				}
				vi := g.Index(u.Add(d))
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}

	return labels, count
}
