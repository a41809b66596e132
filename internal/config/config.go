// Package config reads chrono's runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings. Unset or malformed variables fall back to
// DefaultConfig.
type Config struct {
	TickInterval time.Duration
	ExportDir    string
	ArchiveDB    string // empty disables the SQLite archive
	PresetsFile  string // YAML presets loaded at TUI start
	LogUseCases  bool
	LogFile      string // TUI debug log; empty disables
	ShareMode    string // clipboard or none
}

// DefaultConfig returns the settings used when no variables are set.
func DefaultConfig() Config {
	return Config{
		TickInterval: time.Second,
		ExportDir:    defaultExportDir(),
		ShareMode:    "clipboard",
	}
}

// Load reads CHRONO_* variables on top of DefaultConfig.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CHRONO_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TickInterval = d
		}
	}
	if v := os.Getenv("CHRONO_EXPORT_DIR"); v != "" {
		cfg.ExportDir = expandHome(v)
	}
	if v := os.Getenv("CHRONO_ARCHIVE_DB"); v != "" {
		cfg.ArchiveDB = expandHome(v)
	}
	if v := os.Getenv("CHRONO_PRESETS"); v != "" {
		cfg.PresetsFile = expandHome(v)
	}
	if v := os.Getenv("CHRONO_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CHRONO_LOG_FILE"); v != "" {
		cfg.LogFile = expandHome(v)
	}
	if v := strings.ToLower(os.Getenv("CHRONO_SHARE")); v == "clipboard" || v == "none" {
		cfg.ShareMode = v
	}

	return cfg
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chrono"
	}
	return filepath.Join(home, ".chrono")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
