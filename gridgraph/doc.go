// Package gridgraph treats a rectangular 2D grid of weighted cells as an
// 8-connected graph for pathfinding.
//
// What:
//
//   - Grid stores one cost multiplier per cell, row-major from the top-left
//     corner. Weight 0 means blocked; any weight ≥ 1 is walkable.
//   - CanEnter, CanStep and StepCost answer every movement question the
//     search packages ask, so the corner-cutting policy lives in one place.
//   - Direction is a closed 8-value compass with a precomputed table of
//     derived directions (left, right, back, forward diagonals, components).
//   - Adapters build grids from bools, weights, packed flag strings and ASCII.
//   - ConnectedComponents, Reachable and Nearest analyse walkable regions.
//
// Corner cutting:
//
//	A diagonal step is legal only when both orthogonally adjacent cells are
//	walkable. Moving NE from (x,y) requires (x+1,y) and (x,y-1) open as well
//	as (x+1,y-1). The policy is symmetric: CanStep(a, d) == CanStep(b, d.Reverse())
//	for b = a.Add(d).
//
// Costs:
//
//	StepCost(from, to) = 1 for axis moves, √2 for diagonal moves, multiplied
//	by the weight of the destination cell.
//
// Complexity:
//
//   - NewGrid:             O(W×H) time and memory (input is copied).
//   - CanEnter/CanStep:    O(1).
//   - ConnectedComponents: O(W×H×8), Memory: O(W×H).
//   - Reachable, Nearest:  O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is zero.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: flat storage length differs from width×height.
//   - ErrBadWeight: weight is negative, NaN, infinite, or in (0,1).
//   - ErrBadCell: an adapter met a symbol it does not understand.
//   - ErrInvalidStep: PathCost met two cells that are not a legal step apart.
package gridgraph
