// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idOffset = 0          (first intersection ID)
//   • rng      = nil        (pure/deterministic unless seeded)
//   • origin   = (0, 0)
//   • scale    = 1.0        (RandomGeometric sampling square side)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// idOffset is the ID of the first intersection of the whole build.
	idOffset int
	// base is the ID of the first intersection of the running constructor;
	// BuildMap sets it before each constructor.
	base int
	// rng for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// origin translates every generated coordinate.
	origin orb.Point
	// scale is the side of the square RandomGeometric samples from.
	scale float64
}

const defaultScale = 1.0

// newBuilderConfig applies opts over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: defaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a map-wide intersection ID.
func (c builderConfig) id(i int) int { return c.base + i }

// at translates a local coordinate by the configured origin.
func (c builderConfig) at(x, y float64) orb.Point {
	return orb.Point{c.origin.X() + x, c.origin.Y() + y}
}
