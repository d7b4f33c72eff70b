package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"reckon/internal/history"
)

type appConfig struct {
	Output  outputConfig  `toml:"output"`
	History historyConfig `toml:"history"`
	Repl    replConfig    `toml:"repl"`
}

type outputConfig struct {
	Color string `toml:"color"`
}

type historyConfig struct {
	Enabled bool `toml:"enabled"`
	Limit   int  `toml:"limit"`
}

type replConfig struct {
	Prompt string `toml:"prompt"`
}

func defaultConfig() appConfig {
	return appConfig{
		Output:  outputConfig{Color: "auto"},
		History: historyConfig{Enabled: true, Limit: history.DefaultLimit},
		Repl:    replConfig{Prompt: "reckon> "},
	}
}

// findReckonToml walks from startDir to the filesystem root looking
// for a reckon.toml.
func findReckonToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "reckon.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the merged configuration: defaults overlaid with
// whatever reckon.toml defines. A missing file is not an error.
func loadConfig(startDir string) (appConfig, error) {
	cfg := defaultConfig()
	path, ok, err := findReckonToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return defaultConfig(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Output.Color)) {
	case "auto", "on", "off":
	default:
		return defaultConfig(), fmt.Errorf("%s: [output].color must be auto, on, or off", path)
	}
	if meta.IsDefined("history", "limit") && cfg.History.Limit <= 0 {
		return defaultConfig(), fmt.Errorf("%s: [history].limit must be positive", path)
	}
	if cfg.Repl.Prompt == "" {
		cfg.Repl.Prompt = "reckon> "
	}
	return cfg, nil
}

// openHistory opens the history store if the config enables it.
// Returns nil when history is off or the cache dir is unavailable.
func openHistory(cfg appConfig) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open("reckon", cfg.History.Limit)
	if err != nil {
		return nil
	}
	return store
}
