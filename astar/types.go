package astar

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors returned by the search.
var (
	// ErrNilMap indicates a nil *spatial.Map was passed in.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrStartNotFound indicates the start intersection is not in the map.
	ErrStartNotFound = errors.New("astar: start intersection not found")

	// ErrGoalNotFound indicates the goal intersection is not in the map.
	ErrGoalNotFound = errors.New("astar: goal intersection not found")

	// ErrNotARoad indicates two consecutive path entries are not joined by a road.
	ErrNotARoad = errors.New("astar: consecutive path nodes are not connected")

	// ErrBadMaxCost indicates WithMaxCost received a negative or NaN value.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Heuristic estimates the remaining cost from a point to the goal point.
// It must never return a negative value.
type Heuristic func(from, goal orb.Point) float64

// EuclideanHeuristic is the straight-line distance. It is the default.
func EuclideanHeuristic(from, goal orb.Point) float64 {
	return planar.Distance(from, goal)
}

// ZeroHeuristic makes the search behave like plain Dijkstra.
func ZeroHeuristic(_, _ orb.Point) float64 { return 0 }

// Options configures a search.
//
// Heuristic – remaining-cost estimate; nil falls back to EuclideanHeuristic.
// MaxCost   – routes costlier than this are not explored. Default +Inf.
// OnExpand  – optional hook invoked once per expansion with the node's g.
type Options struct {
	Heuristic Heuristic
	MaxCost   float64
	OnExpand  func(id int, g float64)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithHeuristic overrides the remaining-cost estimate. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithMaxCost caps the cost of explored routes. The cap is checked against
// the exact cost from the start, never the estimate, so it holds for any
// heuristic. A goal that can only be reached above the cap is reported as
// not found.
// Panics with ErrBadMaxCost on negative or NaN input.
func WithMaxCost(c float64) Option {
	if c < 0 || math.IsNaN(c) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = c
	}
}

// WithOnExpand registers a hook called for every expanded node, in
// expansion order. In ShortestPaths the hook may run concurrently.
func WithOnExpand(fn func(id int, g float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns the straight-line heuristic, no cost cap and no hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: EuclideanHeuristic,
		MaxCost:   math.Inf(1),
	}
}

// Result describes the outcome of one search.
//
// Path     – intersection IDs from start to goal inclusive; nil when !Found.
// Cost     – total Euclidean length of Path; +Inf when !Found.
// Found    – false means no route exists (or none within MaxCost).
// Expanded – number of frontier entries that were expanded.
type Result struct {
	Path     []int
	Cost     float64
	Found    bool
	Expanded int
}

// Query is one start/goal pair for ShortestPaths.
type Query struct {
	Start int
	Goal  int
}
