// Package config handles td configuration: where the config file lives, the
// known keys with their defaults, validation, and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// Paths captures resolved locations for config.
type Paths struct {
	ConfigDir  string // directory holding the config file
	ConfigFile string // path to config.yaml
}

// ResolvePaths determines the config file location. An explicit path wins,
// then $TD_CONFIG, then $XDG_CONFIG_HOME/td, then ~/.config/td.
func ResolvePaths(explicit string) (Paths, error) {
	file := explicit
	if file == "" {
		file = os.Getenv(EnvConfig)
	}
	if file != "" {
		abs, err := filepath.Abs(file)
		if err != nil {
			return Paths{}, fmt.Errorf("resolving config path: %w", err)
		}
		return Paths{ConfigDir: filepath.Dir(abs), ConfigFile: abs}, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("locating config directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "td")
	return Paths{ConfigDir: dir, ConfigFile: filepath.Join(dir, FileName)}, nil
}
