// Package config layers defaults, an optional TOML file, and TAREAS_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const DefaultFile = "tareas.toml"

type Config struct {
	DataFile  string `toml:"data_file"`
	ExportDir string `toml:"export_dir"`
	LogLevel  string `toml:"log_level"`
}

func Default() Config {
	return Config{
		DataFile:  "tasks.json",
		ExportDir: "exports",
		LogLevel:  "warn",
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; it just means defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// FromEnv applies TAREAS_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnv("TAREAS_DATA_FILE"); ok {
		cfg.DataFile = v
	}
	if v, ok := getEnv("TAREAS_EXPORT_DIR"); ok {
		cfg.ExportDir = v
	}
	if v, ok := getEnv("TAREAS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return cfg
}

func getEnv(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return "", false
	}
	return v, true
}
