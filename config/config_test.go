package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.Backend.Driver != backend.DriverMemory {
		t.Errorf("Backend.Driver = %q, want %q", cfg.Backend.Driver, backend.DriverMemory)
	}
	if cfg.Engine.ClearWidth <= 0 {
		t.Errorf("Engine.ClearWidth = %d, want > 0", cfg.Engine.ClearWidth)
	}
	if cfg.API.Addr == "" {
		t.Error("API.Addr is empty, want a default listen address")
	}
	if cfg.Observer != "noop" {
		t.Errorf("Observer = %q, want %q", cfg.Observer, "noop")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{
		"backend": {"driver": "file", "path": "/var/lib/prefstore"},
		"engine": {"clear_concurrency": 16},
		"api": {"addr": ":7000"},
		"observer": "slog"
	}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.Driver != backend.DriverFile {
		t.Errorf("Backend.Driver = %q, want %q", cfg.Backend.Driver, backend.DriverFile)
	}
	if cfg.Backend.Path != "/var/lib/prefstore" {
		t.Errorf("Backend.Path = %q, want %q", cfg.Backend.Path, "/var/lib/prefstore")
	}
	if cfg.Engine.ClearWidth != 16 {
		t.Errorf("Engine.ClearWidth = %d, want 16", cfg.Engine.ClearWidth)
	}
	if cfg.API.Addr != ":7000" {
		t.Errorf("API.Addr = %q, want %q", cfg.API.Addr, ":7000")
	}
	if cfg.Observer != "slog" {
		t.Errorf("Observer = %q, want %q", cfg.Observer, "slog")
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"api": {"addr": ":7000"}}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Addr != ":7000" {
		t.Errorf("API.Addr = %q, want %q", cfg.API.Addr, ":7000")
	}
	if cfg.Backend.Driver != backend.DriverMemory {
		t.Errorf("Backend.Driver = %q, want default %q", cfg.Backend.Driver, backend.DriverMemory)
	}
	if cfg.Engine.ClearWidth <= 0 {
		t.Errorf("Engine.ClearWidth = %d, want default > 0", cfg.Engine.ClearWidth)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("Load() error = nil, want error for invalid JSON")
	}
}
