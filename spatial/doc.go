// Package spatial holds the road network that route searches run on: a set of
// intersections placed on a 2-D plane and the undirected roads between them.
//
// Overview:
//
//   - Intersections are identified by int IDs and carry an orb.Point (X, Y).
//   - Roads are undirected; AddRoad(a, b) makes b reachable from a and a from b.
//   - Road cost is never stored. It is always the Euclidean distance between
//     the two endpoints (see Map.Distance), which keeps the straight-line
//     heuristic used by package astar admissible and consistent.
//
// Extras:
//
//   - Nearest(p) snaps a free coordinate to the closest intersection through a
//     lazily built R-tree (github.com/dhconnelly/rtreego).
//   - Components / Connected group intersections with union-find
//     (github.com/spakin/disjoint), useful for spotting disconnected islands
//     before routing.
//
// Thread safety:
//
//   - Map is not synchronised. Concurrent reads are fine once construction is
//     finished and Nearest has been warmed up (or not used); mutation while a
//     search is running is a caller bug. Synchronise externally if needed.
//
// Errors (sentinel):
//
//	– ErrUnknownIntersection   an ID is not present in the map.
//	– ErrDuplicateIntersection AddIntersection was called twice for one ID.
//	– ErrSelfLoop              AddRoad(a, a).
//	– ErrEmptyMap              Nearest on a map with no intersections.
package spatial
