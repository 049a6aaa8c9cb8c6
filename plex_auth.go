package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// newClientID generates a fresh X-Plex-Client-Identifier.
func newClientID() string {
	return uuid.NewString()
}

// PlexAuthenticator implements the plex.tv PIN link flow: create a PIN, ask
// the user to claim it at plex.tv/link, poll until the PIN carries a token.
type PlexAuthenticator struct {
	plexTVURL    string
	clientID     string
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

type plexPin struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	AuthToken string `json:"authToken"`
}

// NewPlexAuthenticator creates an authenticator. clientID may be empty, in
// which case a new identifier is generated; the caller persists it together
// with the issued token.
func NewPlexAuthenticator(plexTVURL, clientID string) *PlexAuthenticator {
	if plexTVURL == "" {
		plexTVURL = DefaultPlexTVBaseURL
	}
	if clientID == "" {
		clientID = newClientID()
	}

	return &PlexAuthenticator{
		plexTVURL:    plexTVURL,
		clientID:     clientID,
		httpClient:   &http.Client{Timeout: PlexAPITimeout},
		pollInterval: PinPollInterval,
		pollTimeout:  PinPollTimeout,
	}
}

// ClientID returns the identifier the PIN was requested under.
func (a *PlexAuthenticator) ClientID() string { return a.clientID }

// Login runs the whole flow and returns the issued token.
func (a *PlexAuthenticator) Login(ctx context.Context) (string, error) {
	pin, err := a.createPin(ctx)
	if err != nil {
		return "", fmt.Errorf("creating plex.tv PIN: %w", err)
	}

	LogStage(ctx, "Visit https://plex.tv/link and enter the code: %s", pin.Code)

	token, err := a.waitForToken(ctx, pin.ID)
	if err != nil {
		return "", err
	}

	LogInfoSuccess(ctx, "Plex authentication complete")
	return token, nil
}

func (a *PlexAuthenticator) createPin(ctx context.Context) (*plexPin, error) {
	endpoint := a.plexTVURL + "/api/v2/pins?" + url.Values{"strong": {"true"}}.Encode()

	var pin plexPin
	if err := a.doJSON(ctx, http.MethodPost, endpoint, &pin); err != nil {
		return nil, err
	}
	if pin.Code == "" {
		return nil, fmt.Errorf("plex.tv returned a PIN without a code")
	}
	return &pin, nil
}

// waitForToken polls the PIN until the user claims it. PINs expire server
// side; the local timeout just keeps the command from hanging forever.
func (a *PlexAuthenticator) waitForToken(ctx context.Context, pinID int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	endpoint := fmt.Sprintf("%s/api/v2/pins/%d", a.plexTVURL, pinID)

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("waiting for PIN claim: %w", ctx.Err())
		case <-ticker.C:
		}

		var pin plexPin
		if err := a.doJSON(ctx, http.MethodGet, endpoint, &pin); err != nil {
			return "", fmt.Errorf("polling plex.tv PIN: %w", err)
		}

		if pin.AuthToken != "" {
			return pin.AuthToken, nil
		}
	}
}

func (a *PlexAuthenticator) doJSON(ctx context.Context, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	setPlexClientHeaders(req.Header, a.clientID)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, endpoint, resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
