// Package builder generates deterministic spatial.Map fixtures for tests,
// benchmarks, examples and the lvkit CLI.
//
// The package follows the functional-options style used across lvkit:
//
//   - Constructor: a closure that adds intersections and roads to a map.
//     – Path(n, spacing):          n collinear intersections, one road between neighbors.
//     – Grid(rows, cols, spacing): orthogonal lattice with 4-neighborhood roads.
//     – RandomGeometric(n, r):     n random points in the unit square (scaled by
//     WithScale); a road joins every pair closer than r.
//   - BuilderOption: mutates the builderConfig before construction.
//     – WithSeed / WithRand:  RNG for stochastic constructors.
//     – WithIDOffset:         first intersection ID (default 0).
//     – WithOrigin:           translation applied to every coordinate.
//     – WithScale:            side length of the sampling square for RandomGeometric.
//
// Composition:
//
//	BuildMap applies constructors in order. Each constructor numbers its
//	intersections right after the previous one, so composing two constructors
//	yields two islands with no road between them, which is the fixture for
//	"no route" tests.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical maps.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidSpacing, ErrInvalidRadius,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
package builder
