package astar

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvkit/spatial"
)

// ShortestPaths answers many start/goal queries on the same map using at most
// workers goroutines (workers <= 0 means GOMAXPROCS). results[i] belongs to
// queries[i].
//
// The first invalid query (unknown start or goal)
// or a cancelled ctx stops the batch and its error is returned; results of
// queries that had already finished are kept.
func ShortestPaths(ctx context.Context, m *spatial.Map, queries []Query, workers int, opts ...Option) ([]Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := validate(m, q.Start, q.Goal); err != nil {
				return fmt.Errorf("query %d (%d→%d): %w", i, q.Start, q.Goal, err)
			}
			results[i] = search(m, q.Start, q.Goal, cfg)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	// The caller's context may have been cancelled after the last query was
	// scheduled but before any goroutine observed it.
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}
