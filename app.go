package main

import (
	"context"
	"fmt"
	"time"
)

// ListSource fetches the Letterboxd reference lists.
type ListSource interface {
	FetchLists(ctx context.Context) (watchlist, watched []Movie, err error)
}

// WatchlistService is the mutable side of the Plex account watchlist.
type WatchlistService interface {
	GetWatchlist(ctx context.Context) ([]WatchlistItem, error)
	RemoveFromWatchlist(ctx context.Context, items []WatchlistItem) error
}

// App wires the collaborators for one sync run. Everything here is built
// fresh per invocation and discarded afterwards; no state survives a run.
type App struct {
	config  Config
	lists   ListSource
	plex    WatchlistService
	catalog Catalog
	report  *SyncReport
	dryRun  bool
}

// NewApp creates an App with configured clients. The plex.tv token comes from
// config/environment first, then the token file written by `login`; having
// neither is a configuration error surfaced before any remote call.
func NewApp(ctx context.Context, config Config, dryRun, verbose bool) (*App, error) {
	LogStage(ctx, "Initializing...")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	tokenFile, err := LoadTokenFile(config.TokenFilePath)
	if err != nil {
		return nil, err
	}

	token := config.Plex.Token
	clientID := tokenFile.ClientID
	if token == "" {
		token = tokenFile.Token
	}
	if token == "" {
		return nil, fmt.Errorf("no Plex token configured: set PLEX_TOKEN or run `letterboxd-plex-sync login`")
	}
	if clientID == "" {
		clientID = newClientID()
	}

	letterboxd := NewLetterboxdClient(
		config.Letterboxd.BaseURL,
		config.Letterboxd.Username,
		HTTPClientTimeout,
		verbose,
	)

	plex := NewPlexClient(
		token,
		clientID,
		config.Plex.MetadataURL,
		config.Plex.DiscoverURL,
		PlexAPITimeout,
		verbose,
	)

	LogDebug(ctx, "Clients created for Letterboxd user %s", config.Letterboxd.Username)

	return &App{
		config:  config,
		lists:   letterboxd,
		plex:    plex,
		catalog: plex,
		report:  NewSyncReport(),
		dryRun:  dryRun,
	}, nil
}

// Run executes one sync: fetch both sides, classify, remove watched titles,
// converge the rest, report. Fetch and removal failures are fatal; everything
// inside convergence is per-movie and only lands in the report.
func (a *App) Run(ctx context.Context) (*SyncResult, error) {
	return a.runWithConverger(ctx, NewConverger(a.catalog, a.dryRun))
}

func (a *App) runWithConverger(ctx context.Context, converger *Converger) (*SyncResult, error) {
	startTime := time.Now()

	watchlist, watched, currentItems, err := a.fetch(ctx)
	if err != nil {
		return nil, err
	}

	desired := NewMovieSet(watchlist)
	watchedSet := NewMovieSet(watched)

	LogStage(ctx, "Processing watchlist items")
	buckets := reconcileWatchlist(
		WithLogPrefix(ctx, "classify"),
		currentItems,
		desired,
		watchedSet,
		a.config.Workers,
	)
	LogDebug(ctx, "Classified %d items: %d to remove, %d present, %d unknown to Letterboxd",
		len(currentItems), len(buckets.Remove), len(buckets.Present), len(buckets.Add))

	if err := a.removeWatched(ctx, buckets.Remove); err != nil {
		return nil, err
	}

	LogStage(ctx, "Syncing Letterboxd watchlist to Plex")
	added, unsynced := converger.Converge(WithLogPrefix(ctx, "converge"), watchlist, buckets.Present)

	a.report.AddUnsynced(unsynced)

	result := &SyncResult{
		Removed:        buckets.Remove,
		AlreadyPresent: buckets.Present,
		Added:          added,
		Unsynced:       a.report.Unsynced(),
	}

	a.report.Print(result, time.Since(startTime))

	return result, nil
}

// fetch retrieves the Letterboxd lists and the current Plex watchlist.
// Any failure here is fatal: classification needs all three datasets.
func (a *App) fetch(ctx context.Context) (watchlist, watched []Movie, currentItems []WatchlistItem, err error) {
	LogStage(ctx, "Getting current Plex watchlist")
	currentItems, err = a.plex.GetWatchlist(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	LogInfoSuccess(ctx, "Got %d items from Plex watchlist", len(currentItems))

	LogStage(ctx, "Getting Letterboxd data")
	watchlist, watched, err = a.lists.FetchLists(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return watchlist, watched, currentItems, nil
}

// removeWatched issues the bulk removal. A failure is fatal: a partially
// applied removal leaves the watchlist in an unknown state relative to what
// the rest of the run would report.
func (a *App) removeWatched(ctx context.Context, items []WatchlistItem) error {
	if len(items) == 0 {
		return nil
	}

	if a.dryRun {
		LogInfo(ctx, "Dry run: would remove %d already watched movies", len(items))
		return nil
	}

	LogStage(ctx, "Clear already watched movies")
	if err := a.plex.RemoveFromWatchlist(ctx, items); err != nil {
		return err
	}
	LogInfoSuccess(ctx, "Removed %d already watched movies", len(items))

	return nil
}
