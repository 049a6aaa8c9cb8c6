package main

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// Buckets holds the three-way split of the current Plex watchlist.
// Every input item lands in exactly one bucket; slice order is unspecified
// because outcomes are collected in completion order.
type Buckets struct {
	Remove  []WatchlistItem
	Present []string
	Add     []WatchlistItem
}

// reconcileWatchlist classifies every current watchlist item against the
// Letterboxd sets using a bounded worker pool. Classification is pure
// in-memory comparison, so workers share the read-only sets without locking;
// only the collected outcomes need aggregation, which the pool handles.
func reconcileWatchlist(ctx context.Context, items []WatchlistItem, desired, watched MovieSet, workers int) Buckets {
	if workers <= 0 {
		workers = DefaultClassifyWorkers
	}

	LogDebug(ctx, "Classifying %d watchlist items with %d workers", len(items), workers)

	p := pool.NewWithResults[Outcome]().WithMaxGoroutines(workers)
	for _, item := range items {
		p.Go(func() Outcome {
			return classifyItem(item, desired, watched)
		})
	}
	outcomes := p.Wait()

	var buckets Buckets
	for _, outcome := range outcomes {
		switch outcome.Action {
		case ActionRemove:
			LogInfo(ctx, "Movie %s already watched. Adding to delete list", outcome.Item.Title)
			buckets.Remove = append(buckets.Remove, outcome.Item)
		case ActionPresent:
			buckets.Present = append(buckets.Present, outcome.IMDBID)
		case ActionAdd:
			LogDebug(ctx, "Movie %s not known to Letterboxd, leaving as is", outcome.Item.Title)
			buckets.Add = append(buckets.Add, outcome.Item)
		}
	}

	return buckets
}
