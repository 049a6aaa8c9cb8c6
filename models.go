package main

import "fmt"

// Movie represents one entry from the Letterboxd watchlist or watched list.
// Identity is the IMDB ID; the title is only a search seed.
type Movie struct {
	Title  string `json:"title"`
	IMDBID string `json:"imdb_id"`
}

func (m Movie) String() string {
	return fmt.Sprintf("%s (%s)", m.Title, m.IMDBID)
}

// MovieSet indexes movies by IMDB ID for O(1) membership checks.
// Duplicate entries collapse onto the same key.
type MovieSet map[string]Movie

// NewMovieSet builds a set from a fetched list. Entries without an IMDB ID
// cannot be matched and are dropped.
func NewMovieSet(movies []Movie) MovieSet {
	set := make(MovieSet, len(movies))
	for _, m := range movies {
		if m.IMDBID == "" {
			continue
		}
		set[m.IMDBID] = m
	}
	return set
}

// Contains reports whether the set holds a movie with the given IMDB ID.
func (s MovieSet) Contains(imdbID string) bool {
	_, ok := s[imdbID]
	return ok
}

// WatchlistItem is one item of the Plex account watchlist, or one Discover
// search candidate. GUIDs holds the raw identifier strings from all catalogs
// Plex knows about (imdb://, tmdb://, tvdb://, ...).
type WatchlistItem struct {
	RatingKey string
	Title     string
	Type      string
	GUIDs     []string
}

func (w WatchlistItem) String() string {
	return fmt.Sprintf("%s (ratingKey=%s)", w.Title, w.RatingKey)
}

// SyncResult summarizes one completed run.
// Added and Unsynced together cover exactly the watchlist movies that were not
// already present on Plex.
type SyncResult struct {
	Removed        []WatchlistItem
	AlreadyPresent []string
	Added          []Movie
	Unsynced       []UnsyncedMovie
}

// UnsyncedMovie is a watchlist movie that could not be confirmed on Discover.
type UnsyncedMovie struct {
	Movie  Movie
	Reason string
}

// FetchError wraps a failed list retrieval. Fetch failures are fatal: without
// both reference lists no classification can happen.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed watchlist mutation (remove or add).
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
