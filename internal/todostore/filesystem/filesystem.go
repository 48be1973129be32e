// Package filesystem implements todostore.Store on a single local file.
//
// The whole list is one document. Saves go through a temporary file in the
// same directory followed by a rename, so a crash never leaves a half-written
// list behind. There is no locking: two processes saving at the same time
// race, and the last rename wins.
package filesystem

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"todo-lite/internal/todolist"
	"todo-lite/internal/todostore"

	"github.com/charmbracelet/log"
)

// Store implements todostore.Store using one file on disk.
type Store struct {
	path   string
	format todostore.Format
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFormat forces an encoding instead of detecting it from the extension.
func WithFormat(f todostore.Format) Option {
	return func(s *Store) {
		s.format = f
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates a store for the file at path. A leading ~ is expanded to the
// user's home directory.
func New(path string, opts ...Option) (*Store, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	s := &Store{
		path:   expanded,
		format: todostore.FormatAuto,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the expanded file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the concrete encoding used for the file.
func (s *Store) Format() todostore.Format {
	return todostore.DetectFormat(s.path, s.format)
}

// Load reads the list. A missing file yields an empty list.
func (s *Store) Load(ctx context.Context) (*todolist.TodoList, error) {
	doc, err := s.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return todolist.New(), nil
	}
	return doc.List(), nil
}

// LoadDocument reads the raw document. It returns nil, nil when the file does
// not exist.
func (s *Store) LoadDocument(ctx context.Context) (*todostore.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("todo file does not exist, starting empty", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading todo file: %w", err)
	}

	codec, err := todostore.CodecFor(s.Format())
	if err != nil {
		return nil, err
	}
	doc, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing todo file %s: %w", s.path, err)
	}
	s.logger.Debug("loaded todo file", "path", s.path, "format", s.Format(), "items", len(doc.Items))
	return doc, nil
}

// ValidateFile checks the file's raw contents against the todo file schema
// before any decoding. It returns nil, nil when the file does not exist.
func (s *Store) ValidateFile(ctx context.Context) ([]todostore.Problem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading todo file: %w", err)
	}
	problems, err := todostore.ValidateEncoded(s.Format(), data)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("validated todo file", "path", s.path, "problems", len(problems))
	return problems, nil
}

// Save writes the list, creating the parent directory if needed.
func (s *Store) Save(ctx context.Context, list *todolist.TodoList) error {
	codec, err := todostore.CodecFor(s.Format())
	if err != nil {
		return err
	}
	data, err := codec.Encode(todostore.FromList(list))
	if err != nil {
		return fmt.Errorf("encoding todo list: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating todo directory: %w", err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("writing todo file: %w", err)
	}
	s.logger.Debug("saved todo file", "path", s.path, "format", s.Format(), "bytes", len(data))
	return nil
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("todo file path is empty")
	}
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimLeft(strings.TrimPrefix(path, "~"), "/")), nil
}

// atomicWrite writes data to a file atomically via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}

// Compile-time check that Store implements todostore.Store.
var _ todostore.Store = (*Store)(nil)
