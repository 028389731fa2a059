package jps

import (
	"context"
	"fmt"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// ctxCheckEvery is how many loop iterations pass between context checks.
const ctxCheckEvery = 256

// Searcher runs Jump Point Search over one grid, reusing its node arena and
// frontier across calls. It is not safe for concurrent use.
type Searcher struct {
	grid  *gridgraph.Grid
	opts  Options
	arena *arena
	open  frontier

	start, goal gridgraph.Coord
	target      int
	current     int

	pruning bool
	hscale  float64

	state State
	stats Stats
	path  Path

	dirBuf [8]gridgraph.Direction
}

// NewSearcher allocates a Searcher sized for g.
// Options are applied in order; invalid ones panic (see WithFrontier).
func NewSearcher(g *gridgraph.Grid, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Searcher{
		opts:    o,
		arena:   newArena(g.Size()),
		current: noParent,
		state:   Exhausted,
	}
	s.open = newFrontier(o.Frontier, s.arena)
	s.bind(g)

	return s, nil
}

// FindPath is a one-shot helper: NewSearcher followed by Find.
func FindPath(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (Result, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Find(start, end)
}

// Rebind points the Searcher at another grid of the same dimensions, keeping
// its allocations. Returns ErrGridMismatch when the cell counts differ.
func (s *Searcher) Rebind(g *gridgraph.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Size() != len(s.arena.nodes) {
		return fmt.Errorf("%w: have %d cells, got %d", ErrGridMismatch, len(s.arena.nodes), g.Size())
	}
	s.bind(g)
	s.Reset()

	return nil
}

func (s *Searcher) bind(g *gridgraph.Grid) {
	s.grid = g
	s.pruning = g.Uniform()
	s.hscale = g.MinWeight()
}

// Grid returns the grid the Searcher is bound to.
func (s *Searcher) Grid() *gridgraph.Grid { return s.grid }

// Find returns the shortest path from start to end.
//
// Errors:
//   - ErrNoPath wrapping ErrStartInvalid or ErrEndInvalid for bad endpoints.
//   - ErrNoPath wrapping ErrUnreachable when no path exists.
//   - ErrSearchLimit when WithMaxExpansions is exceeded.
func (s *Searcher) Find(start, end gridgraph.Coord) (Result, error) {
	return s.FindContext(context.Background(), start, end)
}

// FindContext is Find with cancellation checked between expansions.
func (s *Searcher) FindContext(ctx context.Context, start, end gridgraph.Coord) (Result, error) {
	if err := s.begin(start, end); err != nil {
		return Result{}, err
	}
	for loops := 0; !s.state.Terminal(); loops++ {
		if loops%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Stats: s.stats}, err
			}
		}
		if err := s.step(); err != nil {
			return Result{Stats: s.stats}, err
		}
	}
	if s.state == Exhausted {
		return Result{Stats: s.stats}, fmt.Errorf("%w: %w: %v→%v", ErrNoPath, ErrUnreachable, start, end)
	}

	return Result{Path: s.path, Cost: s.arena.nodes[s.target].g, Stats: s.stats}, nil
}

// Reset drops all per-search state in O(1).
func (s *Searcher) Reset() {
	s.arena.reset()
	s.open.clear()
	s.stats = Stats{}
	s.path = nil
	s.current = noParent
	s.state = Ready
}

// State returns the phase of the current or last search.
func (s *Searcher) State() State { return s.state }

// Stats returns the counters of the current or last search.
func (s *Searcher) Stats() Stats { return s.stats }

// Touched returns every cell the scanner entered during the last search,
// start included, in row-major order.
func (s *Searcher) Touched() []gridgraph.Coord {
	var out []gridgraph.Coord
	for i := range s.arena.touched {
		if s.arena.wasTouched(i) {
			out = append(out, s.grid.At(i))
		}
	}

	return out
}

// Closed returns the expanded cells of the last search in row-major order.
func (s *Searcher) Closed() []gridgraph.Coord { return s.collect(flagClosed) }

// Open returns the cells currently on the frontier in row-major order.
func (s *Searcher) Open() []gridgraph.Coord { return s.collect(flagOpen) }

func (s *Searcher) collect(flag uint8) []gridgraph.Coord {
	var out []gridgraph.Coord
	for i := range s.arena.nodes {
		if s.arena.has(i, flag) {
			out = append(out, s.grid.At(i))
		}
	}

	return out
}

// begin validates endpoints and seeds the frontier with start.
func (s *Searcher) begin(start, end gridgraph.Coord) error {
	s.Reset()
	s.start, s.goal = start, end
	if !s.grid.CanEnter(start) {
		s.state = Exhausted
		return fmt.Errorf("%w: %w: %v", ErrNoPath, ErrStartInvalid, start)
	}
	if !s.grid.CanEnter(end) {
		s.state = Exhausted
		return fmt.Errorf("%w: %w: %v", ErrNoPath, ErrEndInvalid, end)
	}
	s.target = s.grid.Index(end)

	i := s.grid.Index(start)
	n := s.arena.at(i)
	n.h = s.heuristic(start)
	n.f = n.h
	n.seq = s.arena.nextSeq()
	n.flags = flagOpen
	s.open.insert(i)
	s.stats.Pushed++
	s.touch(start)

	return nil
}

// step pops one node: the target ends the search, anything else is closed
// and expanded through the pruner and the jump scanner.
func (s *Searcher) step() error {
	if s.open.size() == 0 {
		s.state = Exhausted
		return nil
	}
	i := s.open.extractMin()
	n := &s.arena.nodes[i]
	n.flags &^= flagOpen
	if i == s.target {
		n.flags |= flagClosed
		s.current = i
		s.state = Found
		s.path = s.reconstruct(i)
		return nil
	}
	if limit := s.opts.MaxExpansions; limit > 0 && s.stats.Expanded >= limit {
		n.flags |= flagOpen
		s.open.insert(i)
		return fmt.Errorf("%w: %d expansions", ErrSearchLimit, limit)
	}

	n.flags |= flagClosed
	s.current = i
	s.stats.Expanded++
	s.state = Running

	c := s.grid.At(i)
	for _, d := range s.prune(i, c) {
		jp, cost, ok := s.jump(c, d)
		if !ok {
			continue
		}
		s.relax(i, s.grid.Index(jp), jp, n.g+cost)
	}
	if s.open.size() == 0 {
		s.state = Exhausted
	}

	return nil
}

// relax offers node j, reached from parent at cost g.
func (s *Searcher) relax(parent, j int, c gridgraph.Coord, g float64) {
	m := s.arena.at(j)
	if m.flags&flagClosed != 0 {
		return
	}
	if m.flags&flagOpen == 0 {
		m.flags |= flagOpen
		m.parent = parent
		m.g = g
		m.h = s.heuristic(c)
		m.f = g + m.h
		m.seq = s.arena.nextSeq()
		s.open.insert(j)
		s.stats.Pushed++
		return
	}
	if g < m.g {
		m.parent = parent
		m.g = g
		m.f = g + m.h
		s.open.decrease(j)
		s.stats.DecreaseKeys++
	}
}

// heuristic is the octile distance to the goal scaled by the cheapest weight.
func (s *Searcher) heuristic(c gridgraph.Coord) float64 {
	return s.hscale * Octile(abs(c.X-s.goal.X), abs(c.Y-s.goal.Y))
}

// Octile returns D·(dx+dy) + (D2−2D)·min(dx,dy) with D=1 and D2=√2:
// the unit-weight 8-connected distance ignoring walls.
func Octile(dx, dy int) float64 {
	lo := min(dx, dy)

	return float64(dx+dy) + (gridgraph.Sqrt2-2)*float64(lo)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
