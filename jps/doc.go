// Package jps implements Jump Point Search, an A* variant for uniform-cost
// 8-connected grids that exploits path symmetry to expand far fewer nodes.
//
// What:
//
//   - Searcher owns a flat, index-addressed node arena sized to one grid and
//     runs one search at a time. Reusing a Searcher costs O(1) per call: node
//     state is invalidated by bumping a generation stamp.
//   - The neighbor pruner keeps only the directions an optimal path could
//     continue in; the jump scanner walks each direction until it meets the
//     target, a forced neighbor, or (diagonally) a cell whose axis scans do.
//   - Paths come back as waypoints with collinear points removed.
//   - Stepper drives the same state machine one expansion at a time for
//     visualisers and debuggers.
//
// State machine:
//
//	Ready → Running → Found | Exhausted
//
// Heuristic:
//
//	Octile distance h = D·(dx+dy) + (D2−2D)·min(dx,dy), D=1, D2=√2, scaled by
//	the smallest walkable weight of the grid. It is admissible and consistent,
//	so a popped node's cost is final.
//
// Ties:
//
//	Frontier entries are ordered by f, then h, then insertion order, so equal
//	inputs always produce equal paths regardless of frontier backing.
//
// Corner cutting:
//
//	Never. Movement legality comes from gridgraph.Grid.CanStep.
//
// Weighted grids:
//
//	Symmetry pruning assumes every walkable cell costs the same. On grids with
//	mixed weights the pruner returns all 8 directions and the scanner stops
//	after one step, which is plain A* over the same arena and frontier.
//
// Concurrency:
//
//	A Searcher is not safe for concurrent use. Share the immutable grid and
//	give each goroutine its own Searcher.
//
// Errors (sentinel):
//
//   - ErrNoPath       every "no path" outcome; one of the following is wrapped with it.
//   - ErrStartInvalid start is out of bounds or blocked.
//   - ErrEndInvalid   end is out of bounds or blocked.
//   - ErrUnreachable  the frontier emptied before reaching the end.
//   - ErrSearchLimit  WithMaxExpansions cap reached (not a no-path result).
//   - ErrNilGrid      a nil grid was supplied.
//   - ErrGridMismatch a Searcher was asked to search a grid of another size.
package jps
