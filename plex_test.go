package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testToken = "test-token"

func newPlexTestClient(serverURL string) *PlexClient {
	return NewPlexClient(testToken, "client-123", serverURL, serverURL, 5*time.Second, false)
}

func TestPlexClient_GetWatchlist(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/sections/watchlist/all", r.URL.Path)
		assert.Equal(t, testToken, r.Header.Get("X-Plex-Token"))
		assert.Equal(t, "client-123", r.Header.Get("X-Plex-Client-Identifier"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_, _ = w.Write([]byte(`{
			"MediaContainer": {
				"size": 2,
				"Metadata": [
					{
						"ratingKey": "619",
						"title": "The Shawshank Redemption",
						"type": "movie",
						"Guid": [
							{"id": "imdb://tt0111161"},
							{"id": "tmdb://278"}
						]
					},
					{
						"ratingKey": "1290",
						"title": "No Identifiers",
						"type": "movie"
					}
				]
			}
		}`))
	}))
	defer server.Close()

	items, err := newPlexTestClient(server.URL).GetWatchlist(ctx)
	assert.NoError(t, err)
	if assert.Len(t, items, 2) {
		assert.Equal(t, "619", items[0].RatingKey)
		assert.Equal(t, []string{"imdb://tt0111161", "tmdb://278"}, items[0].GUIDs)
		assert.Empty(t, items[1].GUIDs)
	}
}

func TestPlexClient_GetWatchlistErrorIsFetchError(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newPlexTestClient(server.URL).GetWatchlist(ctx)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestPlexClient_SearchDiscover(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/search", r.URL.Path)
		assert.Equal(t, "Heat", r.URL.Query().Get("query"))
		assert.Equal(t, "movies", r.URL.Query().Get("searchTypes"))

		_, _ = w.Write([]byte(`{
			"MediaContainer": {
				"SearchResults": [
					{"Metadata": {"ratingKey": "1", "title": "Heat", "type": "movie", "Guid": [{"id": "imdb://tt0113277"}]}},
					{"Metadata": {"ratingKey": "2", "title": "Heat (1972)", "type": "movie", "Guid": [{"id": "imdb://tt0068696"}]}}
				]
			}
		}`))
	}))
	defer server.Close()

	items, err := newPlexTestClient(server.URL).SearchDiscover(ctx, "Heat")
	assert.NoError(t, err)
	if assert.Len(t, items, 2) {
		// Order must follow the provider's order.
		assert.Equal(t, "1", items[0].RatingKey)
		assert.Equal(t, "2", items[1].RatingKey)
	}
}

func TestPlexClient_AddToWatchlist(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	var gotMethod, gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("ratingKey")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newPlexTestClient(server.URL).AddToWatchlist(ctx, WatchlistItem{RatingKey: "619", Title: "Heat"})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/actions/addToWatchlist", gotPath)
	assert.Equal(t, "619", gotKey)
}

func TestPlexClient_RemoveFromWatchlist(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	var keys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actions/removeFromWatchlist", r.URL.Path)
		keys = append(keys, r.URL.Query().Get("ratingKey"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	items := []WatchlistItem{
		{RatingKey: "1", Title: "One"},
		{RatingKey: "2", Title: "Two"},
	}

	err := newPlexTestClient(server.URL).RemoveFromWatchlist(ctx, items)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, keys)
}

func TestPlexClient_RemoveFailureIsMutationError(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	err := newPlexTestClient(server.URL).RemoveFromWatchlist(ctx, []WatchlistItem{{RatingKey: "1", Title: "One"}})

	var mutErr *MutationError
	assert.ErrorAs(t, err, &mutErr)
}
