package config

import (
	"os"
	"strings"
)

// Environment variable names for td configuration.
const (
	EnvConfig   = "TD_CONFIG"    // Path to config.yaml
	EnvFile     = "TD_FILE"      // Override todo.file
	EnvFormat   = "TD_FORMAT"    // Override todo.format
	EnvLogLevel = "TD_LOG_LEVEL" // Override log.level
	EnvJSON     = "TD_JSON"      // Enable JSON output ("1" or "true")
)

// ApplyEnvOverrides copies TD_FILE, TD_FORMAT and TD_LOG_LEVEL into the
// store in memory. These overrides are not persisted to the config file.
func ApplyEnvOverrides(s Store) {
	if file := os.Getenv(EnvFile); file != "" {
		s.SetInMemory(KeyTodoFile, file)
	}
	if format := os.Getenv(EnvFormat); format != "" {
		s.SetInMemory(KeyTodoFormat, strings.ToLower(format))
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		s.SetInMemory(KeyLogLevel, strings.ToLower(level))
	}
}

// JSONFromEnv reports whether TD_JSON requests JSON output.
func JSONFromEnv() bool {
	switch strings.ToLower(os.Getenv(EnvJSON)) {
	case "1", "true":
		return true
	}
	return false
}
