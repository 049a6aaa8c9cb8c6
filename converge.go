package main

//go:generate mockgen -destination mock_catalog_test.go -package main -source=converge.go

import (
	"context"

	"golang.org/x/time/rate"
)

// Catalog abstracts the Plex Discover search/add surface so convergence can
// be tested without plex.tv.
type Catalog interface {
	SearchDiscover(ctx context.Context, title string) ([]WatchlistItem, error)
	AddToWatchlist(ctx context.Context, item WatchlistItem) error
}

// Converger adds missing Letterboxd watchlist movies to the Plex watchlist.
// Searches go through a rate limiter: Discover throttles aggressively and
// every movie costs at least one request.
type Converger struct {
	catalog Catalog
	limiter *rate.Limiter
	dryRun  bool
}

// NewConverger creates a Converger with the default Discover pacing.
func NewConverger(catalog Catalog, dryRun bool) *Converger {
	return &Converger{
		catalog: catalog,
		limiter: rate.NewLimiter(rate.Limit(DiscoverRateLimit), DiscoverRateBurst),
		dryRun:  dryRun,
	}
}

// Converge processes watchlist movies sequentially, in list order. Each movie
// not already present is searched by title; candidates are scanned in returned
// order and the first one confirmed by IMDB ID equality is added. A search or
// add failure only affects that movie: it lands in unsynced and the loop goes
// on, since titles are independent and partial progress beats an abort.
func (c *Converger) Converge(ctx context.Context, watchlist []Movie, presentIDs []string) (added []Movie, unsynced []UnsyncedMovie) {
	present := make(map[string]struct{}, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = struct{}{}
	}

	for _, movie := range watchlist {
		if _, ok := present[movie.IMDBID]; ok {
			LogDebug(ctx, "%s is already present in Plex watchlist, skipping", movie.Title)
			continue
		}

		matched, err := c.convergeOne(ctx, movie)
		if err != nil {
			LogWarn(ctx, "Could not sync %s: %v", movie.Title, err)
			unsynced = append(unsynced, UnsyncedMovie{Movie: movie, Reason: err.Error()})
			continue
		}
		if !matched {
			LogInfo(ctx, " - Could not find %s (IMDB ID: %s) in Plex Discover", movie.Title, movie.IMDBID)
			unsynced = append(unsynced, UnsyncedMovie{Movie: movie, Reason: "no Discover candidate with matching IMDB ID"})
			continue
		}

		added = append(added, movie)
	}

	return added, unsynced
}

// convergeOne searches Discover for a single movie and adds the first
// candidate whose GUIDs confirm the IMDB ID. Returns false when no candidate
// matches; an error means the search or add itself failed.
func (c *Converger) convergeOne(ctx context.Context, movie Movie) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, err
	}

	LogInfo(ctx, "Searching for.. %s", movie.Title)
	candidates, err := c.catalog.SearchDiscover(ctx, movie.Title)
	if err != nil {
		return false, &FetchError{Source: "Discover search", Err: err}
	}

	for _, candidate := range candidates {
		if !candidateMatches(candidate, movie.IMDBID) {
			continue
		}

		if c.dryRun {
			LogInfo(ctx, " - Dry run: would add %s to Plex watchlist", movie.Title)
			return true, nil
		}

		LogInfo(ctx, " - Adding %s to Plex watchlist", movie.Title)
		if err := c.catalog.AddToWatchlist(ctx, candidate); err != nil {
			return false, &MutationError{Op: "add to watchlist", Err: err}
		}
		return true, nil
	}

	return false, nil
}

// candidateMatches reports whether any of the candidate's GUIDs decode to the
// wanted IMDB ID.
func candidateMatches(candidate WatchlistItem, imdbID string) bool {
	for _, guid := range candidate.GUIDs {
		if id, ok := extractIMDBID(guid); ok && id == imdbID {
			return true
		}
	}
	return false
}
