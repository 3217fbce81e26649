package kanren

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunBatch runs independent queries concurrently, each as RunContext(ctx, n, q).
// At most limit searches run at once; limit <= 0 means no limit.
// Each search is single threaded and shares nothing with the others.
// Results are returned in query order. If ctx is done, or a search fails,
// the remaining searches are cancelled and the first error is returned.
func RunBatch(ctx context.Context, n, limit int, queries ...Query) ([][]Term, error) {
	results := make([][]Term, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, q := range queries {
		g.Go(func() error {
			terms, err := RunContext(ctx, n, q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = terms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
