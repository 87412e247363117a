package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.DataFile != "tasks.json" || cfg.ExportDir != "exports" {
		t.Fatalf("unexpected path defaults: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("unexpected log level default: %+v", cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tareas.toml")
	body := "data_file = \"data/mine.json\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataFile != "data/mine.json" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ExportDir != "exports" {
		t.Fatalf("expected untouched default export dir, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tareas.toml")
	if err := os.WriteFile(path, []byte("datafile = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TAREAS_DATA_FILE", "env.json")
	t.Setenv("TAREAS_EXPORT_DIR", "env-exports")
	t.Setenv("TAREAS_LOG_LEVEL", "info")

	cfg := FromEnv(Default())
	if cfg.DataFile != "env.json" || cfg.ExportDir != "env-exports" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected env overrides: %+v", cfg)
	}
}

func TestFromEnvIgnoresEmpty(t *testing.T) {
	t.Setenv("TAREAS_DATA_FILE", "   ")
	cfg := FromEnv(Default())
	if cfg.DataFile != "tasks.json" {
		t.Fatalf("expected blank env var ignored, got %+v", cfg)
	}
}
