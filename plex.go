package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PlexClient talks to the plex.tv account APIs: the metadata provider for the
// account watchlist and its mutations, and the discover provider for search.
type PlexClient struct {
	metadataURL string
	discoverURL string
	token       string
	clientID    string
	httpClient  *http.Client
}

// plexMediaContainer mirrors the JSON shape shared by the watchlist and
// search endpoints.
type plexMediaContainer struct {
	MediaContainer struct {
		Size          int                `json:"size"`
		Metadata      []plexMetadata     `json:"Metadata"`
		SearchResults []plexSearchResult `json:"SearchResults"`
	} `json:"MediaContainer"`
}

type plexSearchResult struct {
	Metadata plexMetadata `json:"Metadata"`
}

type plexMetadata struct {
	RatingKey string `json:"ratingKey"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Guid      []struct {
		ID string `json:"id"`
	} `json:"Guid"`
}

func (m plexMetadata) toWatchlistItem() WatchlistItem {
	item := WatchlistItem{
		RatingKey: m.RatingKey,
		Title:     m.Title,
		Type:      m.Type,
	}
	for _, g := range m.Guid {
		item.GUIDs = append(item.GUIDs, g.ID)
	}
	return item
}

// NewPlexClient creates a client for the plex.tv account APIs.
// metadataURL/discoverURL override the plex.tv defaults when non-empty.
func NewPlexClient(token, clientID, metadataURL, discoverURL string, timeout time.Duration, verbose bool) *PlexClient {
	if metadataURL == "" {
		metadataURL = DefaultPlexMetadataBaseURL
	}
	if discoverURL == "" {
		discoverURL = DefaultPlexDiscoverBaseURL
	}

	return &PlexClient{
		metadataURL: metadataURL,
		discoverURL: discoverURL,
		token:       token,
		clientID:    clientID,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingRoundTripper(nil, verbose),
		},
	}
}

// GetWatchlist returns every item currently on the account watchlist.
func (c *PlexClient) GetWatchlist(ctx context.Context) ([]WatchlistItem, error) {
	endpoint := c.metadataURL + "/library/sections/watchlist/all"

	var container plexMediaContainer
	err := retryWithBackoff(ctx, func() error {
		return c.doJSON(ctx, http.MethodGet, endpoint, &container)
	}, "get watchlist")
	if err != nil {
		return nil, &FetchError{Source: "Plex watchlist", Err: err}
	}

	items := make([]WatchlistItem, 0, len(container.MediaContainer.Metadata))
	for _, m := range container.MediaContainer.Metadata {
		items = append(items, m.toWatchlistItem())
	}
	return items, nil
}

// SearchDiscover queries Plex Discover for movies by title. Candidates are
// returned in the provider's order; callers rely on that order.
func (c *PlexClient) SearchDiscover(ctx context.Context, title string) ([]WatchlistItem, error) {
	q := url.Values{}
	q.Set("query", title)
	q.Set("searchTypes", "movies")
	q.Set("searchProviders", "discover")
	q.Set("includeMetadata", "1")
	q.Set("limit", strconv.Itoa(PlexSearchLimit))
	endpoint := c.discoverURL + "/library/search?" + q.Encode()

	var container plexMediaContainer
	err := retryWithBackoff(ctx, func() error {
		return c.doJSON(ctx, http.MethodGet, endpoint, &container)
	}, "discover search")
	if err != nil {
		return nil, err
	}

	items := make([]WatchlistItem, 0, len(container.MediaContainer.SearchResults))
	for _, r := range container.MediaContainer.SearchResults {
		items = append(items, r.Metadata.toWatchlistItem())
	}
	return items, nil
}

// AddToWatchlist puts one Discover item on the account watchlist.
func (c *PlexClient) AddToWatchlist(ctx context.Context, item WatchlistItem) error {
	endpoint := c.metadataURL + "/actions/addToWatchlist?" + url.Values{
		"ratingKey": {item.RatingKey},
	}.Encode()

	return retryWithBackoff(ctx, func() error {
		return c.doJSON(ctx, http.MethodPut, endpoint, nil)
	}, "add to watchlist")
}

// RemoveFromWatchlist takes items off the account watchlist, one request per
// item. The first failure aborts: a half-applied removal means the reported
// state would no longer match reality, so the caller treats it as fatal.
func (c *PlexClient) RemoveFromWatchlist(ctx context.Context, items []WatchlistItem) error {
	for _, item := range items {
		endpoint := c.metadataURL + "/actions/removeFromWatchlist?" + url.Values{
			"ratingKey": {item.RatingKey},
		}.Encode()

		err := retryWithBackoff(ctx, func() error {
			return c.doJSON(ctx, http.MethodPut, endpoint, nil)
		}, "remove from watchlist")
		if err != nil {
			return &MutationError{Op: fmt.Sprintf("remove %s from watchlist", item.Title), Err: err}
		}

		LogDebug(ctx, "Removed %s from Plex watchlist", item.Title)
	}

	return nil
}

// doJSON performs a request with the standard X-Plex headers and decodes a
// JSON body into out when out is non-nil.
func (c *PlexClient) doJSON(ctx context.Context, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Plex-Token", c.token)
	setPlexClientHeaders(req.Header, c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, endpoint, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}

	return nil
}

// setPlexClientHeaders sets the headers plex.tv uses to identify the client
// application. The client identifier must stay stable across runs or issued
// tokens stop being associated with this device.
func setPlexClientHeaders(h http.Header, clientID string) {
	h.Set("X-Plex-Client-Identifier", clientID)
	h.Set("X-Plex-Product", PlexProduct)
	h.Set("X-Plex-Device-Name", PlexDeviceName)
	h.Set("X-Plex-Platform", PlexPlatform)
}
