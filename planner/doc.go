// Package planner serves path queries against one grid from many goroutines.
//
// A Planner owns the immutable grid, its connected-component labels, an
// optional pathcache.Cache, and a pool of jps.Searcher values (a Searcher is
// single-threaded, the Planner is not). Each Find:
//
//  1. optionally snaps blocked or off-map endpoints to the nearest open cell,
//  2. rejects invalid endpoints with the jps no-path errors,
//  3. answers cross-component queries with ErrUnreachable without searching,
//  4. consults the cache,
//  5. runs Jump Point Search on a pooled Searcher and stores the outcome.
//
// Batch fans a query list out over a bounded errgroup and reports totals.
package planner
