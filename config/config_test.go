package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meteocli.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "latitude = 52.52\nlongitude = 13.41\nelevation = 38\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Latitude != 52.52 || cfg.Longitude != 13.41 || cfg.Elevation != 38 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if loc := cfg.Location(); loc.Lat != 52.52 || loc.Lng != 13.41 {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestLoadDefaultsMissingAndInvalidKeys(t *testing.T) {
	path := writeConfig(t, "latitude = \"north\"\nlongitude = -0.12\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Latitude != 0 || cfg.Longitude != -0.12 || cfg.Elevation != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(missing); !errors.Is(err, ErrConfigUnavailable) {
		t.Fatalf("expected ErrConfigUnavailable for missing file, got %v", err)
	}

	broken := writeConfig(t, "latitude = = 1\n")
	if _, err := Load(broken); !errors.Is(err, ErrConfigUnavailable) {
		t.Fatalf("expected ErrConfigUnavailable for broken file, got %v", err)
	}

	if Default() != (Config{}) {
		t.Fatalf("default config should be zero")
	}
}

func TestPathFromEnvironment(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	p, err := Path()
	if err != nil || p != "/tmp/custom.toml" {
		t.Fatalf("Path() = %q, %v", p, err)
	}

	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", "/home/someone")
	p, err = Path()
	if err != nil || p != filepath.Join("/home/someone", ".config", "meteocli.toml") {
		t.Fatalf("Path() = %q, %v", p, err)
	}
}
