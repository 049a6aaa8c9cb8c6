package main

import "time"

// Service endpoints
const (
	DefaultLetterboxdBaseURL    = "https://letterboxd-list-radarr.onrender.com"
	DefaultPlexTVBaseURL        = "https://plex.tv"
	DefaultPlexMetadataBaseURL  = "https://metadata.provider.plex.tv"
	DefaultPlexDiscoverBaseURL  = "https://discover.provider.plex.tv"
)

// IMDB GUID namespace as it appears in Plex GUID strings (imdb://tt0111161)
const IMDBGUIDPrefix = "imdb://"

// X-Plex header values identifying this client to plex.tv
const (
	PlexProduct     = "letterboxd-plex-sync"
	PlexDeviceName  = "letterboxd-plex-sync"
	PlexPlatform    = "CLI"
	PlexSearchLimit = 10 // Maximum Discover search results per query
)

// File permissions
const (
	TokenFilePerms = 0o600 // Read/write for owner only
	ConfigDirPerms = 0o750 // Read/write/execute for owner, read/execute for group
)

// Environment variable names
const (
	EnvVarPlexToken          = "PLEX_TOKEN"
	EnvVarPlexURL            = "PLEX_URL"
	EnvVarLetterboxdUsername = "LETTERBOXD_USERNAME"
)

// Timeout and duration constants
const (
	HTTPClientTimeout = 60 * time.Second // HTTP client timeout for list fetches
	PlexAPITimeout    = 30 * time.Second // Timeout for individual plex.tv requests
	PinPollInterval   = 2 * time.Second  // Poll interval for the plex.tv PIN claim
	PinPollTimeout    = 5 * time.Minute  // Give up waiting for the PIN claim
)

// Retry policy for list fetches
const (
	FetchMaxRetries = 3
)

// Classification worker pool bound. Classification is comparison-bound over
// small in-memory sets; the bound caps goroutine overhead, not I/O.
const DefaultClassifyWorkers = 4

// Discover search pacing (requests per second, burst)
const (
	DiscoverRateLimit = 2
	DiscoverRateBurst = 1
)

// Backoff policy constants for rate-limited plex.tv calls
const (
	BackoffInitialInterval     = 1 * time.Second
	BackoffMaxInterval         = 30 * time.Second
	BackoffMaxElapsedTime      = 2 * time.Minute
	BackoffMultiplier          = 2.0
	BackoffRandomizationFactor = 0.1
)
