package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q; want data", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want info", cfg.LogLevel)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d; want %d", cfg.Workers, runtime.NumCPU())
	}
	if !cfg.ResolveFootnotes {
		t.Error("ResolveFootnotes should default to true")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load of a missing file should not fail: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want the default", cfg.LogLevel)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_dir = "/srv/filings"
log_level = "debug"
workers = 8
max_validation_errors = 100
resolve_footnotes = false
document_cache_size = 16
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/filings" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d; want 8", cfg.Workers)
	}
	if cfg.MaxValidationErrors != 100 {
		t.Errorf("MaxValidationErrors = %d; want 100", cfg.MaxValidationErrors)
	}
	if cfg.ResolveFootnotes {
		t.Error("ResolveFootnotes should be overridden to false")
	}
	if cfg.DocumentCacheSize != 16 {
		t.Errorf("DocumentCacheSize = %d; want 16", cfg.DocumentCacheSize)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_level = \"warn\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q; want warn", cfg.LogLevel)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q; untouched keys keep their defaults", cfg.DataDir)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := os.WriteFile(path, []byte("workers = \"many\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("mistyped value should fail to load")
	}

	if err := os.WriteFile(path, []byte("workers = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("negative worker count should fail to load")
	}
}
