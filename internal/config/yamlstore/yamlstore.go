// Package yamlstore implements config.Store backed by a flat YAML file.
//
// Keys are stored flat ("todo.file: ~/.todo"), never nested. Marshalling a
// map[string]string sorts keys, so the file is stable across writes.
package yamlstore

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"todo-lite/internal/config"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// YAMLStore implements config.Store using a YAML file on disk.
//
// Values set with SetInMemory live in an overlay that shadows the file and
// is never written back.
type YAMLStore struct {
	path    string
	data    map[string]string
	overlay map[string]string
}

// New creates a YAMLStore for path. An existing file is loaded; a missing
// file leaves the store empty until the first Set.
func New(path string) (*YAMLStore, error) {
	s := &YAMLStore{
		path:    path,
		overlay: make(map[string]string),
	}
	if err := s.readFromDisk(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the config file location.
func (s *YAMLStore) Path() string {
	return s.path
}

// Get returns the value for key and whether it was found.
func (s *YAMLStore) Get(key string) (string, bool) {
	if v, ok := s.overlay[key]; ok {
		return v, true
	}
	v, ok := s.data[key]
	return v, ok
}

// Set writes key=value and persists to disk. Any in-memory value for key is
// dropped so the new value is visible.
func (s *YAMLStore) Set(key, value string) error {
	return s.withLock(func() {
		s.data[key] = value
		delete(s.overlay, key)
	})
}

// SetInMemory writes key=value to the overlay without persisting.
func (s *YAMLStore) SetInMemory(key, value string) {
	s.overlay[key] = value
}

// Unset removes key and persists to disk.
func (s *YAMLStore) Unset(key string) error {
	return s.withLock(func() {
		delete(s.data, key)
		delete(s.overlay, key)
	})
}

// All returns a copy of all key-value pairs, overlay included.
func (s *YAMLStore) All() map[string]string {
	out := make(map[string]string, len(s.data)+len(s.overlay))
	for k, v := range s.data {
		out[k] = v
	}
	for k, v := range s.overlay {
		out[k] = v
	}
	return out
}

// Persisted returns a copy of only the values stored in the file.
func (s *YAMLStore) Persisted() map[string]string {
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

func (s *YAMLStore) lockPath() string {
	return s.path + ".lock"
}

// withLock takes an exclusive lock on the sidecar lock file, re-reads the
// file so writes from other processes are kept, applies fn, and writes the
// result back atomically.
func (s *YAMLStore) withLock(fn func()) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	lock := flock.New(s.lockPath())
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquiring config lock: %w", err)
	}
	defer lock.Unlock()

	if err := s.readFromDisk(); err != nil {
		return err
	}

	fn()

	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return atomicWrite(s.path, raw)
}

func (s *YAMLStore) readFromDisk() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]string)
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	fresh := make(map[string]string)
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &fresh); err != nil {
			return fmt.Errorf("parsing config file %s: %w", s.path, err)
		}
		if fresh == nil {
			fresh = make(map[string]string)
		}
	}
	s.data = fresh
	return nil
}

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
		os.Remove(tmp)
		return err
	}
	return nil
}

var _ config.Store = (*YAMLStore)(nil)
