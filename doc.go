// Package jumpgrid finds shortest paths on 2D grids with Jump Point Search.
//
// Movement is 8-directional. Axis steps cost 1 and diagonal steps √2, each
// multiplied by the weight of the cell being entered. A diagonal step
// is legal only when both orthogonal cells it passes between are walkable,
// so paths never cut corners.
//
// Subpackages:
//
//	gridgraph/   the grid model: weights, legal steps, components, loaders
//	jps/         Jump Point Search: Searcher, step-by-step Stepper, paths
//	dijkstra/    exhaustive reference search used to verify jps
//	pathcache/   path caches: in-memory LRU, Redis, no-op
//	planner/     concurrent query service over one grid with caching
//	config/      YAML/TOML settings and scenario files
//	cmd/jumpgrid  command-line front end (find, batch, components, verify)
//
// Quick start:
//
//	g, _ := gridgraph.ParseASCII([]string{
//		"....#...",
//		"..#.#.#.",
//		"..#...#.",
//	})
//	res, err := jps.FindPath(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 7, Y: 2})
//	if err != nil {
//		// errors.Is(err, jps.ErrNoPath) for unreachable or invalid endpoints
//	}
//	fmt.Println(res.Path, res.Cost)
//
// Paths are returned as compressed waypoints: only the cells where the
// direction of travel changes, plus both endpoints. Path.Cells expands them.
package jumpgrid
