// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir is where the file-backed stores live when no directory is
// configured.
const DefaultDataDir = ".resume-workspace"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	DataDir     string `json:"data_dir,omitempty"`     // Directory for file-backed stores
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional)
	ZoomPercent int    `json:"zoom_percent,omitempty"` // Preview/export zoom percentage
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed summaries
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.ZoomPercent < 0 {
		return fmt.Errorf("config error: 'zoom_percent' must be non-negative")
	}
	return nil
}

// ResolvedDataDir returns the configured data directory, defaulting to
// DefaultDataDir under the user's home directory.
func (c *Config) ResolvedDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDataDir
	}
	return filepath.Join(home, DefaultDataDir)
}
