// Package config provides configuration loading and default values.
package config

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

type PlexConfig struct {
	Token string `yaml:"token"`
	URL   string `yaml:"url"`

	// Endpoint overrides, used by tests and by anyone running a
	// metadata proxy. Empty means the plex.tv defaults.
	PlexTVURL   string `yaml:"plextv_url"`
	MetadataURL string `yaml:"metadata_url"`
	DiscoverURL string `yaml:"discover_url"`
}

type LetterboxdConfig struct {
	Username string `yaml:"username"`
	BaseURL  string `yaml:"base_url"`
}

type Config struct {
	Plex          PlexConfig       `yaml:"plex"`
	Letterboxd    LetterboxdConfig `yaml:"letterboxd"`
	TokenFilePath string           `yaml:"token_file_path"`
	Workers       int              `yaml:"workers"`
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file is not an error: everything can come from the
// environment.
func Load(filename string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", filename, err)
		}
	case os.IsNotExist(err):
		// Environment-only configuration.
	default:
		return Config{}, err
	}

	if token := os.Getenv("PLEX_TOKEN"); token != "" {
		cfg.Plex.Token = token
	}

	if url := os.Getenv("PLEX_URL"); url != "" {
		cfg.Plex.URL = url
	}

	if username := os.Getenv("LETTERBOXD_USERNAME"); username != "" {
		cfg.Letterboxd.Username = username
	}

	if cfg.TokenFilePath == "" {
		cfg.TokenFilePath = os.ExpandEnv("$HOME/.config/letterboxd-plex-sync/token.json")
	}

	return cfg, nil
}

// Validate reports every missing required setting at once, so the user fixes
// their environment in one pass instead of one error at a time.
func (c Config) Validate() error {
	var missing []string

	if c.Letterboxd.Username == "" {
		missing = append(missing, "letterboxd.username (or LETTERBOXD_USERNAME)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
