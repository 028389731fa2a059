package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// Sentinel errors returned by the grid Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceInvalid indicates that the source cell is out of bounds or blocked.
	ErrSourceInvalid = errors.New("dijkstra: source is out of bounds or blocked")

	// ErrNoPath indicates that the requested target was not reached.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for cells that were never settled.
var Unreachable = math.Inf(1)

// Options configures the behavior of the grid Dijkstra.
//
// Target      – optional cell at which the search stops once it is settled.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Target      gridgraph.Coord // Cell that ends the search early when HasTarget
	HasTarget   bool            // Whether Target is set
	MaxDistance float64         // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the search as soon as target is settled. Distances of
// cells not yet settled at that point are reported as Unreachable.
func WithTarget(target gridgraph.Coord) Option {
	return func(o *Options) {
		o.Target = target
		o.HasTarget = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
// Default (if not set) is +Inf (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Target:      none (settle every reachable cell).
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}

// Result holds single-source distances over a grid, indexed row-major.
//
// Dist[i] – minimal cost from Source to cell i, or Unreachable.
// Prev[i] – row-major index of i's predecessor on one shortest path,
//
//	-1 for the source and for unreachable cells.
type Result struct {
	Source gridgraph.Coord
	Dist   []float64
	Prev   []int

	grid *gridgraph.Grid
}
