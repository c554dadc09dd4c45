// Package config loads ingestion settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the ingestion settings.
type Config struct {
	// DataDir is the directory scanned for filing files.
	DataDir string `toml:"data_dir"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// Workers is the batch parsing worker count (0 = NumCPU).
	Workers int `toml:"workers"`

	// MaxValidationErrors caps collected validation errors per document
	// (0 = unlimited).
	MaxValidationErrors int `toml:"max_validation_errors"`

	// ResolveFootnotes enables footnoteLink resolution.
	ResolveFootnotes bool `toml:"resolve_footnotes"`

	// DocumentCacheSize is the parsed-document LRU capacity (0 = off).
	DocumentCacheSize int `toml:"document_cache_size"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataDir:          "data",
		LogLevel:         "info",
		Workers:          runtime.NumCPU(),
		ResolveFootnotes: true,
	}
}

// Load reads a TOML config file, layering it over the defaults. A
// missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config %s: workers must not be negative", path)
	}
	if cfg.MaxValidationErrors < 0 {
		return cfg, fmt.Errorf("config %s: max_validation_errors must not be negative", path)
	}
	return cfg, nil
}
