package main

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// SyncReport accumulates per-movie outcomes for deferred printing. Writers
// may run concurrently, so every mutation takes the lock.
type SyncReport struct {
	mu       sync.Mutex
	unsynced []UnsyncedMovie
	out      io.Writer
}

// NewSyncReport creates a new sync report writing to stdout.
func NewSyncReport() *SyncReport {
	return &SyncReport{out: os.Stdout}
}

// SetOutput redirects the rendered report; used by tests.
func (r *SyncReport) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
}

// AddUnsynced records movies that could not be confirmed on Discover.
func (r *SyncReport) AddUnsynced(movies []UnsyncedMovie) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsynced = append(r.unsynced, movies...)
}

// Unsynced returns a copy of the accumulated unsynced movies.
func (r *SyncReport) Unsynced() []UnsyncedMovie {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]UnsyncedMovie, len(r.unsynced))
	copy(out, r.unsynced)
	return out
}

// HasUnsynced reports whether anything failed to sync.
func (r *SyncReport) HasUnsynced() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.unsynced) > 0
}

// Print renders the run summary. Unsynced movies get a table with title,
// IMDB ID and reason; a fully synced run gets a one-line confirmation.
func (r *SyncReport) Print(result *SyncResult, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Removed", "Already present", "Added", "Unsynced"})
	tw.AppendRow(table.Row{
		len(result.Removed),
		len(result.AlreadyPresent),
		len(result.Added),
		len(r.unsynced),
	})
	tw.AppendFooter(table.Row{"", "", "elapsed", elapsed.Round(time.Second)})
	tw.Render()

	if len(r.unsynced) == 0 {
		appLogger.InfoSuccess("Watchlist is in sync")
		return
	}

	appLogger.Info("\nThe following movies could not be synced:")

	ut := table.NewWriter()
	ut.SetOutputMirror(r.out)
	ut.SetStyle(table.StyleRounded)
	ut.AppendHeader(table.Row{"Title", "IMDB ID", "Reason"})
	for _, u := range r.unsynced {
		ut.AppendRow(table.Row{u.Movie.Title, u.Movie.IMDBID, u.Reason})
	}
	ut.Render()

	appLogger.Info("This can happen for a few reasons, e.g.:")
	appLogger.Info("- the movie is considered a TV show on Plex Discover")
	appLogger.Info("- the movie is upcoming/unconfirmed and not yet on Plex Discover")
}
