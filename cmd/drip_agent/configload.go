package main

import (
	"github.com/jonathan/drip-agent/internal/config"
)

// resolveConfig layers configuration: JSON file (if given), then env
// variables for anything the file left empty, then built-in defaults.
func resolveConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}
