// Package search provides two interchangeable shortest-path engines over a
// 2-D integer grid: UniformCost (Dijkstra) and Heuristic (A*).
//
// What:
//
//   - State carries a grid position (x, y) plus path-cost bookkeeping (g, h, cost).
//   - Map is the collaborator contract: it owns dimensions, obstacles, and edge
//     costs, and produces successor states already stamped with their g-value.
//   - UniformCost orders expansion by accumulated cost alone; its bookkeeping
//     map tracks the best-known cost per position, including positions still
//     waiting in the open heap.
//   - Heuristic orders expansion by g + h, where h estimates the remaining cost
//     for 8-directional movement; expanded positions are finalized and never
//     reconsidered.
//
// Why:
//
//   - Game maps and robotics grids: exact minimum-cost routes with a tunable
//     trade-off between guaranteed uniform expansion and heuristic focus.
//   - Benchmarking: both engines report the number of node expansions, so
//     heuristic quality is directly observable.
//
// Complexity:
//
//   - Time:  O(N log N) with N = cells touched; the open heap is indexed, so
//     duplicate lookup is O(1) and relaxation is a true decrease-key in O(log N).
//   - Space: O(N) for the open heap and the per-call bookkeeping map.
//
// Determinism:
//
//   - Equal-cost entries are ordered by ascending row-major position
//     (lower y, then lower x). Expansion order and expansion counts are
//     therefore reproducible for a fixed map.
//
// Errors (sentinel):
//
//   - ErrNilMap   if an engine is constructed without a map collaborator.
//   - ErrEmptyMap if the collaborator reports zero width or height.
//
// A missing path is not an error: Search returns the sentinel pair
// (NoPathCost, 0) — an expected, recoverable outcome.
//
// Example usage:
//
//	g, _ := gridmap.New(cells)
//	engine, err := search.NewHeuristic(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, expanded := engine.Search(search.NewState(0, 0), search.NewState(4, 4))
//	fmt.Printf("cost=%g expanded=%d\n", cost, expanded)
package search
