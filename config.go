package main

import (
	cfg "letterboxd-plex-sync/internal/config"
)

// Re-export config types from internal/config so callers in package main can
// use the same type names.
type PlexConfig = cfg.PlexConfig
type LetterboxdConfig = cfg.LetterboxdConfig
type Config = cfg.Config

func loadConfigFromFile(filename string) (Config, error) {
	return cfg.Load(filename)
}
