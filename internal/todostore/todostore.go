// Package todostore defines how a todo list is persisted: the Store contract,
// the on-disk document shape and the codecs that read and write it.
package todostore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"todo-lite/internal/todolist"
)

// Store loads and saves one root todo list.
type Store interface {
	// Load returns the persisted list, or an empty list if nothing has been
	// saved yet.
	Load(ctx context.Context) (*todolist.TodoList, error)

	// Save replaces the persisted list.
	Save(ctx context.Context, list *todolist.TodoList) error
}

// Format names an on-disk encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for a format name no codec handles.
var ErrUnknownFormat = errors.New("unknown file format")

// Formats lists the accepted format names.
var Formats = []Format{FormatAuto, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatAuto, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (allowed: auto, json, yaml, toml)", ErrUnknownFormat, s)
}

// DetectFormat resolves FormatAuto from the file extension. Unknown or
// missing extensions (such as ~/.todo) mean JSON.
func DetectFormat(path string, f Format) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}
