package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlexAuthenticator_Login(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	var polls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v2/pins":
			assert.Equal(t, "true", r.URL.Query().Get("strong"))
			assert.NotEmpty(t, r.Header.Get("X-Plex-Client-Identifier"))
			writeJSON(t, w, plexPin{ID: 42, Code: "ABCD"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v2/pins/42":
			polls++
			pin := plexPin{ID: 42, Code: "ABCD"}
			if polls >= 2 {
				pin.AuthToken = "issued-token"
			}
			writeJSON(t, w, pin)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	auth := NewPlexAuthenticator(server.URL, "")
	auth.pollInterval = 5 * time.Millisecond

	token, err := auth.Login(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.GreaterOrEqual(t, polls, 2)
}

func TestPlexAuthenticator_UnclaimedPinTimesOut(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(t, w, plexPin{ID: 7, Code: "WXYZ"})
			return
		}
		writeJSON(t, w, plexPin{ID: 7, Code: "WXYZ"})
	}))
	defer server.Close()

	auth := NewPlexAuthenticator(server.URL, "client-abc")
	auth.pollInterval = time.Millisecond
	auth.pollTimeout = 20 * time.Millisecond

	_, err := auth.Login(ctx)
	assert.Error(t, err)
}

func TestPlexAuthenticator_GeneratesClientID(t *testing.T) {
	t.Parallel()

	a := NewPlexAuthenticator("", "")
	b := NewPlexAuthenticator("", "")

	assert.NotEmpty(t, a.ClientID())
	assert.NotEqual(t, a.ClientID(), b.ClientID())

	keep := NewPlexAuthenticator("", "existing-id")
	assert.Equal(t, "existing-id", keep.ClientID())
}

func TestPlexAuthenticator_PinCreationFailure(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	auth := NewPlexAuthenticator(server.URL, "client-abc")

	_, err := auth.Login(ctx)
	assert.Error(t, err)
}
