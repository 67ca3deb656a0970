// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: <detail>: <sentinel>").
//   • Option constructors (WithX) panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidSpacing indicates a non-positive or non-finite spacing.
var ErrInvalidSpacing = errors.New("builder: spacing must be positive and finite")

// ErrInvalidRadius indicates a negative or non-finite connection radius.
var ErrInvalidRadius = errors.New("builder: radius must be non-negative and finite")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the map rejected an intersection or road, or a
// nil constructor was passed to BuildMap.
var ErrConstructFailed = errors.New("builder: construction failed")
