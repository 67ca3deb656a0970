// options.go — functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// BuilderOption customizes a build by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDOffset sets the ID of the first generated intersection.
func WithIDOffset(first int) BuilderOption {
	return func(c *builderConfig) {
		c.idOffset = first
	}
}

// WithOrigin translates every generated coordinate by p.
// Panics on non-finite coordinates.
func WithOrigin(p orb.Point) BuilderOption {
	if !finite(p.X()) || !finite(p.Y()) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		c.origin = p
	}
}

// WithScale sets the side of the square RandomGeometric samples points from.
// Panics if s is not positive and finite.
func WithScale(s float64) BuilderOption {
	if s <= 0 || !finite(s) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
