package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// Grid computes shortest distances from source to every reachable cell of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. source must be in bounds and walkable (ErrSourceInvalid).
//
// Options customization:
//
//   - WithTarget(c): stop as soon as c is settled.
//   - WithMaxDistance(x): cells with distance > x are not explored (x ≥ 0).
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Grid(g *gridgraph.Grid, source gridgraph.Coord, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate source is walkable
	if !g.CanEnter(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceInvalid, source)
	}

	// 4) Prepare flat row-major state.
	V := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 5) Initialize and run main loop.
	r.init(g.Index(source))
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev, grid: g}, nil
}

// ShortestPath returns the cell-by-cell shortest path from→to and its cost.
// Unlike jps paths, every intermediate cell is listed.
func ShortestPath(g *gridgraph.Grid, from, to gridgraph.Coord) ([]gridgraph.Coord, float64, error) {
	res, err := Grid(g, from, WithTarget(to))
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, 0, err
	}

	return path, res.Cost(to), nil
}

// Cost returns the distance to c, or Unreachable when c was not settled or
// lies outside the grid.
func (r *Result) Cost(c gridgraph.Coord) float64 {
	if !r.grid.Contains(c) {
		return Unreachable
	}

	return r.Dist[r.grid.Index(c)]
}

// Reachable reports whether c was settled.
func (r *Result) Reachable(c gridgraph.Coord) bool {
	return r.Cost(c) != Unreachable
}

// PathTo walks predecessors back from c and returns source→c inclusive.
// Returns ErrNoPath when c was not settled.
func (r *Result) PathTo(c gridgraph.Coord) ([]gridgraph.Coord, error) {
	if !r.Reachable(c) {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, r.Source, c)
	}
	var rev []gridgraph.Coord
	for i := r.grid.Index(c); i != -1; i = r.Prev[i] {
		rev = append(rev, r.grid.At(i))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only.
	options Options         // Configuration options (target, cap).
	dist    []float64       // Cell index → current best distance from source.
	prev    []int           // Cell index → predecessor index, -1 if none.
	visited []bool          // Tracks if a cell's distance is finalized.
	pq      nodePQ          // Min-heap for lazy priority queue.
}

// init sets up initial distances and pushes the source with distance 0.
func (r *runner) init(src int) {
	// 1) dist[v] = +∞, prev[v] = -1 for all cells.
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}

	// 2) Distance to the source is zero.
	r.dist[src] = 0

	// 3) Seed the heap.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process is the core loop. It repeatedly settles the closest cell and
// relaxes its legal steps.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells settled).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The target was settled (WithTarget).
//
// Cells that are not settled when the loop stops report Unreachable.
func (r *runner) process() {
	cfg := r.options
	target := -1
	if cfg.HasTarget && r.g.Contains(cfg.Target) {
		target = r.g.Index(cfg.Target)
	}
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Stop once beyond the cap; u is never settled.
		if item.dist > cfg.MaxDistance {
			break
		}

		// 4) u is final.
		r.visited[u] = true
		if u == target {
			break
		}

		// 5) Relax all legal steps out of u.
		r.relax(u)
	}

	// Only settled cells carry final distances.
	for i, ok := range r.visited {
		if !ok {
			r.dist[i] = Unreachable
			r.prev[i] = -1
		}
	}
}

// relax tries every compass direction from u, keeping strictly shorter
// distances and pushing a fresh heap entry for each improvement.
func (r *runner) relax(u int) {
	from := r.g.At(u)
	for _, d := range gridgraph.Directions {
		if !r.g.CanStep(from, d) {
			continue
		}
		to := from.Add(d)
		v := r.g.Index(to)
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + r.g.StepCost(from, to)
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: old entries are ignored once v is visited.
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	id   int     // row-major cell index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
