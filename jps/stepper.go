package jps

import (
	"context"
	"fmt"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// Snapshot exposes the search after one expansion.
type Snapshot struct {
	Step    int             // expansions so far, the popped target included
	State   State           // phase after this step
	Current gridgraph.Coord // node popped by this step
	Open    []gridgraph.Coord
	Closed  []gridgraph.Coord
	Path    Path // set once State is Found
	Stats   Stats
}

// Stepper drives one search an expansion at a time, for visualisers and
// debugging tools. It owns its Searcher.
type Stepper struct {
	ctx   context.Context
	s     *Searcher
	steps int
	err   error
}

// NewStepper validates the endpoints and seeds the search. Invalid endpoints
// return the same errors as Searcher.Find.
func NewStepper(ctx context.Context, g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Stepper, error) {
	s, err := NewSearcher(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.begin(start, end); err != nil {
		return nil, err
	}

	return &Stepper{ctx: ctx, s: s}, nil
}

// Step advances by one expansion. Once the search is terminal further calls
// return the final snapshot unchanged. An exhausted search returns its
// snapshot together with an ErrNoPath error wrapping ErrUnreachable.
func (st *Stepper) Step() (Snapshot, error) {
	if st.err != nil {
		return st.snapshot(), st.err
	}
	if !st.s.state.Terminal() {
		if err := st.ctx.Err(); err != nil {
			st.err = err
			return st.snapshot(), err
		}
		if err := st.s.step(); err != nil {
			st.err = err
			return st.snapshot(), err
		}
		st.steps++
	}
	if st.s.state == Exhausted {
		st.err = fmt.Errorf("%w: %w: %v→%v", ErrNoPath, ErrUnreachable, st.s.start, st.s.goal)
		return st.snapshot(), st.err
	}

	return st.snapshot(), nil
}

// Done reports whether the search reached a terminal state or failed.
func (st *Stepper) Done() bool { return st.err != nil || st.s.state.Terminal() }

// Searcher exposes the underlying searcher for read-only inspection.
func (st *Stepper) Searcher() *Searcher { return st.s }

func (st *Stepper) snapshot() Snapshot {
	snap := Snapshot{
		Step:   st.steps,
		State:  st.s.state,
		Open:   st.s.Open(),
		Closed: st.s.Closed(),
		Stats:  st.s.stats,
	}
	if st.s.current != noParent {
		snap.Current = st.s.grid.At(st.s.current)
	}
	if st.s.state == Found {
		snap.Path = st.s.path
	}

	return snap
}
