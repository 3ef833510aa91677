package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-workspace/internal/config"
	"github.com/jonathan/resume-workspace/internal/store"
	"github.com/jonathan/resume-workspace/internal/types"
	"github.com/jonathan/resume-workspace/internal/workspace"
)

// loadCLIConfig merges the optional config file with CLI flag overrides
func loadCLIConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagDatabaseURL != "" {
		cfg.DatabaseURL = flagDatabaseURL
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openWorkspace builds a Workspace over Postgres when a database URL is set,
// file storage otherwise. The returned closer releases any pool.
func openWorkspace(ctx context.Context) (*workspace.Workspace, *config.Config, func(), error) {
	cfg, err := loadCLIConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPG(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		return workspace.New(pg.Repositories()), cfg, pg.Close, nil
	}

	repos, err := store.NewFileRepositories(cfg.ResolvedDataDir())
	if err != nil {
		return nil, nil, nil, err
	}
	return workspace.New(repos), cfg, func() {}, nil
}

// readDocument loads a ResumeDocument from a JSON file
func readDocument(path string) (*types.ResumeDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file %s: %w", path, err)
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document JSON: %w", err)
	}
	return &doc, nil
}

// resolveZoom picks the export zoom percentage: an explicit --zoom flag wins,
// then a configured zoom_percent, then the flag's default.
func resolveZoom(flagSet bool, flagZoom, configZoom int) int {
	if flagSet {
		return flagZoom
	}
	if configZoom != 0 {
		return configZoom
	}
	return flagZoom
}

// printJSON marshals v with indentation and prints it to stdout
func printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory when needed.
func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
