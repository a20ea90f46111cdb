package crucible

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/grid"
)

// Query is one independent search for FindMany.
type Query struct {
	Start grid.Coord
	Goal  Goal
	// Options are applied after the shared options passed to FindMany.
	Options []Option
}

// FindMany runs every query against g concurrently, at most limit at a time
// (limit ≤ 0 means GOMAXPROCS). Each search owns its frontier and best-cost
// table; only the read-only grid is shared.
//
// Results are returned in query order. The first failure cancels the
// searches still running and is returned wrapped with its query index.
//
// Every search runs under ctx (nil means context.Background()); a
// WithContext in opts or Query.Options is overridden. Hooks in opts are
// shared by all queries and may be called concurrently, so they must be
// safe for concurrent use.
func FindMany(ctx context.Context, g *grid.Grid, queries []Query, limit int, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, q := range queries {
		eg.Go(func() error {
			all := make([]Option, 0, len(opts)+len(q.Options)+1)
			all = append(all, opts...)
			all = append(all, q.Options...)
			all = append(all, WithContext(ctx))

			res, err := FindCheapestPath(g, q.Start, q.Goal, all...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
