package jps

import (
	"errors"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("jps: grid is nil")

	// ErrGridMismatch indicates a grid whose size differs from the Searcher's arena.
	ErrGridMismatch = errors.New("jps: grid size differs from searcher")

	// ErrNoPath is the common wrapper of every no-path outcome.
	ErrNoPath = errors.New("jps: no path")

	// ErrStartInvalid indicates the start cell is out of bounds or blocked.
	ErrStartInvalid = errors.New("jps: start is out of bounds or blocked")

	// ErrEndInvalid indicates the end cell is out of bounds or blocked.
	ErrEndInvalid = errors.New("jps: end is out of bounds or blocked")

	// ErrUnreachable indicates the search exhausted every reachable cell.
	ErrUnreachable = errors.New("jps: end is unreachable from start")

	// ErrSearchLimit indicates the expansion cap was reached before a result.
	ErrSearchLimit = errors.New("jps: expansion limit reached")

	// ErrBadFrontier indicates an unknown FrontierKind was requested.
	ErrBadFrontier = errors.New("jps: unknown frontier kind")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("jps: MaxExpansions must be non-negative")
)

// FrontierKind selects the open-set backing structure.
type FrontierKind int

const (
	// HeapFrontier is a binary heap: O(log n) insert, decrease-key and extract-min.
	HeapFrontier FrontierKind = iota

	// LinearFrontier is an unordered slice scanned on extract-min: O(1) insert,
	// O(n) extract. Competitive on tiny maps, kept mainly for cross-checking.
	LinearFrontier
)

// String names the frontier kind as accepted by ParseFrontierKind.
func (k FrontierKind) String() string {
	switch k {
	case HeapFrontier:
		return "heap"
	case LinearFrontier:
		return "linear"
	}

	return "unknown"
}

// ParseFrontierKind maps "heap" or "linear" to a FrontierKind.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch s {
	case "", "heap":
		return HeapFrontier, nil
	case "linear":
		return LinearFrontier, nil
	}

	return 0, ErrBadFrontier
}

// Options configures a Searcher.
//
// Frontier      – open-set backing structure. Default HeapFrontier.
// MaxExpansions – stop with ErrSearchLimit after this many expansions.
//
//	0 means unlimited (default).
type Options struct {
	Frontier      FrontierKind
	MaxExpansions int
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// DefaultOptions returns a heap frontier and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Frontier:      HeapFrontier,
		MaxExpansions: 0,
	}
}

// WithFrontier selects the open-set backing structure.
// Panics with ErrBadFrontier for an unknown kind.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		if kind != HeapFrontier && kind != LinearFrontier {
			panic(ErrBadFrontier.Error())
		}
		o.Frontier = kind
	}
}

// WithMaxExpansions caps the number of closed nodes per search.
// Must be non-negative; 0 disables the cap. Negative values panic with
// ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// State is the phase of one search.
type State int

const (
	// Ready means the frontier is seeded with the start node.
	Ready State = iota
	// Running means at least one node has been expanded.
	Running
	// Found is terminal: the end was popped and the path reconstructed.
	Found
	// Exhausted is terminal: the frontier emptied without reaching the end.
	Exhausted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}

	return "unknown"
}

// Terminal reports whether no further steps are possible.
func (s State) Terminal() bool { return s == Found || s == Exhausted }

// Stats counts the work done by one search.
type Stats struct {
	Expanded     int // nodes closed
	Pushed       int // nodes inserted into the frontier
	DecreaseKeys int // cheaper paths found to open nodes
	Touched      int // distinct cells entered by the scanner, start included
}

// Result is the outcome of a successful search.
type Result struct {
	Path  Path
	Cost  float64
	Stats Stats
}

// Path is an ordered waypoint list from start to end inclusive. Consecutive
// waypoints are joined by a straight or 45° run of legal steps.
type Path []gridgraph.Coord
