// Package dijkstra implements Dijkstra's shortest-path algorithm on
// 8-connected grids.
//
// It is the brute-force reference for the jps package: it expands every
// neighbor of every settled cell with no pruning, so its distances are the
// ground truth the jump point search is checked against in tests and by the
// `jumpgrid verify` command.
//
// Movement rules are the grid's own: gridgraph.Grid.CanStep decides legality
// (no corner cutting) and gridgraph.Grid.StepCost prices each step.
//
// Complexity:
//
//   - Time:  O(V log V) with V = Width×Height; each cell has at most 8
//     outgoing steps, so E ≤ 8V.
//   - Space: O(V) for distances and predecessors, plus O(E) heap entries in
//     the worst case under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Distances and predecessors are flat row-major slices, not maps.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once a cell is settled.
//   - WithTarget stops the loop as soon as the target is settled.
//   - WithMaxDistance stops the loop once the minimum heap distance exceeds it.
//
// Options:
//
//	– WithTarget(c):      stop once c is settled.
//	– WithMaxDistance(x): cells with distance > x are not explored (x ≥ 0).
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrSourceInvalid  if the source is out of bounds or blocked.
//	– ErrNoPath         from ShortestPath / PathTo when the target is not reached.
//	– ErrBadMaxDistance if MaxDistance < 0 (panics in the option).
//
// Example usage:
//
//	res, err := dijkstra.Grid(g, gridgraph.Coord{X: 0, Y: 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost to (4,4): %.3f\n", res.Cost(gridgraph.Coord{X: 4, Y: 4}))
package dijkstra
