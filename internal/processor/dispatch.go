package processor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/rustizarr/internal/plex"
)

// MaxParallel bounds the number of concurrent pipelines.
const MaxParallel = 10

// ClampParallel clamps n to [1, MaxParallel].
func ClampParallel(n int) int {
	return min(max(n, 1), MaxParallel)
}

// ProcessMany runs Process over items with at most parallel concurrent
// pipelines. A failing item never stops the others. Results are unordered.
func (p *Processor) ProcessMany(ctx context.Context, items []plex.Item, parallel int, force bool) []Result {
	return p.dispatch(ctx, items, parallel, func(ctx context.Context, item *plex.Item) Outcome {
		return p.Process(ctx, item, force)
	})
}

func (p *Processor) dispatch(ctx context.Context, items []plex.Item, parallel int, run func(context.Context, *plex.Item) Outcome) []Result {
	parallel = ClampParallel(parallel)
	p.log.Info("processing", "items", len(items), "parallel", parallel)

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(items))
	)

	var g errgroup.Group
	g.SetLimit(parallel)
	for i := range items {
		item := &items[i]
		g.Go(func() error {
			outcome := run(ctx, item)

			mu.Lock()
			results = append(results, Result{Key: item.RatingKey, Title: item.Title, Outcome: outcome})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
