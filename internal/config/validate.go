package config

import (
	"fmt"
	"sort"
	"strings"
)

// validValues maps known keys to their allowed values.
// An empty slice means any non-empty string is accepted.
var validValues = map[string][]string{
	KeyTodoFile:   {},
	KeyTodoFormat: {"auto", "json", "yaml", "toml"},
	KeyListAll:    {"true", "false"},
	KeyLogLevel:   {"debug", "info", "warn", "error"},
	KeyLogFormat:  {"text", "json", "logfmt"},
	KeyColor:      {"auto", "always", "never"},
}

// IsKnownKey reports whether key is one of the core keys.
func IsKnownKey(key string) bool {
	_, ok := validValues[key]
	return ok
}

// ValidateValue checks a single key=value pair. Unknown keys are accepted.
func ValidateValue(key, val string) error {
	allowed, ok := validValues[key]
	if !ok {
		return nil
	}
	if len(allowed) == 0 {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%s: must not be empty", key)
		}
		return nil
	}
	if !contains(allowed, val) {
		return fmt.Errorf("%s: invalid value %q (allowed: %s)", key, val, strings.Join(allowed, ", "))
	}
	return nil
}

// Validate checks all values in s for known keys. It returns an error
// describing every invalid value found, or nil if all values are valid.
func Validate(s Store) error {
	all := s.All()
	keys := make([]string, 0, len(validValues))
	for key := range validValues {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []string
	for _, key := range keys {
		val, ok := all[key]
		if !ok {
			continue
		}
		if err := ValidateValue(key, val); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
