// Package astar finds minimum-cost routes on a spatial.Map with an informed
// best-first (A*) search.
//
// Overview:
//
//   - Road cost is the Euclidean length of the road; the default heuristic is
//     the straight-line distance to the goal. On such maps the heuristic is
//     admissible and consistent, so the first time the goal leaves the
//     frontier its cost is optimal.
//   - The frontier is a binary min-heap ordered by f = g + h, ties going to the
//     lower intersection ID so results are reproducible.
//   - Decrease-key is lazy: an improved neighbor is pushed again and the older
//     entry is discarded when popped, by comparing it with the authoritative
//     g-score. Nodes can be reopened if a caller-supplied heuristic is not
//     consistent.
//
// Outcomes:
//
//   - start == goal                  → path [start], cost 0.
//   - goal unreachable               → Found == false, no error. This is a
//     legitimate answer on disconnected maps.
//   - nil map / unknown start / goal → sentinel error, nothing is searched.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the lazy heap.
//   - Space: O(V + E): score maps plus at most one heap entry per relaxation.
//
// Options:
//
//	– WithHeuristic(h):  replace the straight-line estimate (ZeroHeuristic
//	                     turns the search into Dijkstra).
//	– WithMaxCost(c):    give up on routes longer than c (exact cost, not f).
//	– WithOnExpand(fn):  observe every node as it is expanded.
//
// Batch queries:
//
//	ShortestPaths runs independent searches on a bounded worker pool
//	(golang.org/x/sync/errgroup). Every search owns its own state; the map is
//	only read.
//
// Example:
//
//	path, found, err := astar.ShortestPath(m, 8, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !found {
//	    fmt.Println("no route")
//	}
package astar
