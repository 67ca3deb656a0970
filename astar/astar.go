package astar

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvkit/spatial"
)

// ShortestPath returns the cheapest route from start to goal.
//
// found == false with a nil error means the goal is unreachable; an error is
// returned only for invalid input (ErrNilMap, ErrStartNotFound,
// ErrGoalNotFound).
func ShortestPath(m *spatial.Map, start, goal int, opts ...Option) ([]int, bool, error) {
	res, err := Search(m, start, goal, opts...)
	if err != nil {
		return nil, false, err
	}

	return res.Path, res.Found, nil
}

// Search runs A* from start to goal and reports the route with its cost and
// the amount of work done.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. start must exist (ErrStartNotFound).
//  3. goal must exist (ErrGoalNotFound).
//
// Road endpoints are not re-checked: spatial.Map only accepts roads between
// existing intersections.
func Search(m *spatial.Map, start, goal int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(m, start, goal); err != nil {
		return notFound(), err
	}

	return search(m, start, goal, cfg), nil
}

// validate checks the cheap per-query preconditions.
func validate(m *spatial.Map, start, goal int) error {
	if m == nil {
		return ErrNilMap
	}
	if !m.Has(start) {
		return fmt.Errorf("%w: %d: %w", ErrStartNotFound, start, spatial.ErrUnknownIntersection)
	}
	if !m.Has(goal) {
		return fmt.Errorf("%w: %d: %w", ErrGoalNotFound, goal, spatial.ErrUnknownIntersection)
	}

	return nil
}

// search assumes validated input.
func search(m *spatial.Map, start, goal int, cfg Options) Result {
	if start == goal {
		return Result{Path: []int{start}, Cost: 0, Found: true}
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = EuclideanHeuristic
	}

	goalPt, _ := m.Point(goal)
	r := &runner{
		m:        m,
		options:  cfg,
		start:    start,
		goal:     goal,
		goalPt:   goalPt,
		gScore:   make(map[int]float64),
		cameFrom: make(map[int]int),
		pq:       make(frontier, 0, 16),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state of a single search. Nothing in it outlives
// the call that created it.
type runner struct {
	m        *spatial.Map
	options  Options
	start    int
	goal     int
	goalPt   orb.Point
	gScore   map[int]float64 // best known cost from start; missing means +Inf
	cameFrom map[int]int     // predecessor on the best known route
	pq       frontier        // lazy min-heap on (f, id)
	expanded int
}

// g returns the authoritative cost to reach id, +Inf if never reached.
func (r *runner) g(id int) float64 {
	if v, ok := r.gScore[id]; ok {
		return v
	}

	return math.Inf(1)
}

// h returns the heuristic estimate from id to the goal.
func (r *runner) h(id int) float64 {
	p, _ := r.m.Point(id)
	return r.options.Heuristic(p, r.goalPt)
}

// init seeds the frontier with the start node at g = 0.
func (r *runner) init() {
	r.gScore[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{id: r.start, g: 0, f: r.h(r.start)})
}

// process is the main loop: pop the lowest-f entry, stop at the goal,
// otherwise relax its roads.
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)

		// 1) Stale entry: a cheaper route to this node was recorded after it
		//    was pushed.
		if item.g > r.g(item.id) {
			continue
		}

		// 2) Over the cap. g is exact, so this holds for any heuristic.
		if item.g > r.options.MaxCost {
			continue
		}

		// 3) Goal reached: its g is final.
		if item.id == r.goal {
			return Result{
				Path:     r.reconstruct(),
				Cost:     item.g,
				Found:    true,
				Expanded: r.expanded,
			}
		}

		r.expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(item.id, item.g)
		}
		r.relax(item.id, item.g)
	}

	res := notFound()
	res.Expanded = r.expanded

	return res
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int, gu float64) {
	pu, _ := r.m.Point(u)
	r.m.EachNeighbor(u, func(v int) {
		pv, _ := r.m.Point(v)
		tentative := gu + EuclideanHeuristic(pu, pv)

		// Strict "<": an equal-cost alternative never replaces the first
		// recorded predecessor.
		if tentative >= r.g(v) || tentative > r.options.MaxCost {
			return
		}
		r.gScore[v] = tentative
		r.cameFrom[v] = u
		heap.Push(&r.pq, &frontierItem{id: v, g: tentative, f: tentative + r.options.Heuristic(pv, r.goalPt)})
	})
}

// reconstruct walks cameFrom from the goal back to the start.
func (r *runner) reconstruct() []int {
	path := []int{r.goal}
	for cur := r.goal; cur != r.start; {
		cur = r.cameFrom[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

func notFound() Result {
	return Result{Cost: math.Inf(1)}
}

// frontierItem is one heap entry. Several entries may exist for the same
// node; only the one whose g matches gScore is live.
type frontierItem struct {
	id int
	g  float64
	f  float64
}

// frontier is a min-heap of *frontierItem ordered by f, then by id.
type frontier []*frontierItem

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f goes to the lower ID.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].id != pq[j].id {
		return pq[i].id < pq[j].id
	}

	return pq[i].g < pq[j].g
}

// Swap swaps two entries.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
