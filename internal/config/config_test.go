package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("output:\n  log_queries: true\n"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cfg.Triangle.SmoothStep != 8 || cfg.Path.MaxRadius != 32 || cfg.Query.MaxRadius != 256 || cfg.Output.Indent != 2 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if !cfg.Output.LogQueries {
		t.Fatalf("expected log_queries to be set")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridkit.yaml")
	data := []byte("triangle:\n  smooth_step: 3\npath:\n  max_radius: 10\nquery:\n  max_radius: 50\noutput:\n  indent: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.Triangle.SmoothStep != 3 || cfg.Path.MaxRadius != 10 || cfg.Query.MaxRadius != 50 || cfg.Output.Indent != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Parse([]byte("triangle: [1, 2")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestDefault(t *testing.T) {
	if cfg := Default(); cfg.Triangle.SmoothStep != 8 {
		t.Fatalf("expected default smooth step 8, got %d", cfg.Triangle.SmoothStep)
	}
}
