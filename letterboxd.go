package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// LetterboxdClient fetches a user's watchlist and watched films from a
// letterboxd-list export service (Letterboxd has no public API; the export
// service serves each list as a JSON array of {title, imdb_id}).
type LetterboxdClient struct {
	baseURL    string
	username   string
	httpClient *http.Client
}

// NewLetterboxdClient creates a client with the retrying transport. The
// export service cold-starts, so retries are part of the fetch contract;
// exhausting them is fatal for the run.
func NewLetterboxdClient(baseURL, username string, timeout time.Duration, verbose bool) *LetterboxdClient {
	if baseURL == "" {
		baseURL = DefaultLetterboxdBaseURL
	}

	return &LetterboxdClient{
		baseURL:  baseURL,
		username: username,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: NewRetryableTransport(newLoggingRoundTripper(nil, verbose), FetchMaxRetries),
		},
	}
}

// FetchLists retrieves the watchlist and watched lists in one call. The two
// lists always travel together: classification needs both.
func (c *LetterboxdClient) FetchLists(ctx context.Context) (watchlist, watched []Movie, err error) {
	LogInfo(ctx, "Get Watchlist and Watched Films info from Letterboxd")
	LogInfo(ctx, "Warning: the following calls may take some time to complete.")

	watchlist, err = c.fetchList(ctx, "watchlist")
	if err != nil {
		return nil, nil, &FetchError{Source: "Letterboxd watchlist", Err: err}
	}

	watched, err = c.fetchList(ctx, "films")
	if err != nil {
		return nil, nil, &FetchError{Source: "Letterboxd watched films", Err: err}
	}

	LogInfoSuccess(ctx, "Got Watchlist (%d) and Watched Films (%d) from Letterboxd", len(watchlist), len(watched))
	return watchlist, watched, nil
}

func (c *LetterboxdClient) fetchList(ctx context.Context, list string) ([]Movie, error) {
	url := fmt.Sprintf("%s/%s/%s/", c.baseURL, c.username, list)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var movies []Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", list, err)
	}

	return movies, nil
}
