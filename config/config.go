// Package config loads the viewer location from the per-user TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"meteocli/models"
)

// ErrConfigUnavailable is returned when the configuration file cannot be read or parsed
var ErrConfigUnavailable = errors.New("configuration unavailable")

// Environment variables read by the command
const (
	EnvConfigPath = "METEOCLI_CONFIG"
	EnvAPIURL     = "METEOCLI_API_URL"
)

// Config holds the location settings
type Config struct {
	Latitude  float64
	Longitude float64
	Elevation float64 // meters
}

// Default returns the zero location used when no configuration is available
func Default() Config {
	return Config{}
}

// Location returns the configured latitude/longitude pair
func (c Config) Location() models.Location {
	return models.Location{Lat: c.Latitude, Lng: c.Longitude}
}

// DefaultPath returns ~/.config/meteocli.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	return filepath.Join(home, ".config", "meteocli.toml"), nil
}

// Path returns the configuration path from the environment, falling back to DefaultPath
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	return DefaultPath()
}

// Load reads the configuration file at path. Keys that are missing or not
// numeric are left at zero. The file itself failing to load is reported as
// ErrConfigUnavailable; callers pick the fallback.
func Load(path string) (Config, error) {
	var raw map[string]interface{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigUnavailable, path, err)
	}

	return Config{
		Latitude:  number(raw["latitude"]),
		Longitude: number(raw["longitude"]),
		Elevation: number(raw["elevation"]),
	}, nil
}

func number(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}
