// Package lvkit is a small toolkit for two classic problems: finding the
// shortest route through a planar road network, and compressing symbol
// sequences with Huffman prefix codes.
//
// Packages:
//
//	spatial/  — road maps: intersections with planar coordinates, undirected
//	            roads, Euclidean road length, nearest-intersection lookup
//	            (R-tree) and connected components (union-find)
//	astar/    — A* search with a straight-line heuristic, lazy-deletion
//	            frontier, deterministic tie-breaking and parallel batch queries
//	huffman/  — frequency counting, code-tree construction, encode/decode and
//	            rebuilding a decoder from a stored code table
//	builder/  — deterministic map fixtures: Path, Grid, RandomGeometric
//	cmd/lvkit — command-line front end (route, routes, huffman, gen)
//
// Quick start:
//
//	m, _ := builder.BuildMap(nil, builder.Grid(10, 10, 1))
//	path, found, err := astar.ShortestPath(m, 0, 99)
//
//	bits, tree, _ := huffman.EncodeString("abracadabra")
//	text, _ := huffman.DecodeString(bits, tree)
//
// Libraries never log and never panic on bad input data; invalid input is
// reported with sentinel errors that can be matched with errors.Is. Option
// constructors panic on invalid arguments, since those are programming errors.
//
// Concurrent searches on the same map are safe as long as nothing mutates it.
// Map.Nearest builds its index on first use, so call it once before sharing
// the map if lookups will run concurrently.
package lvkit
