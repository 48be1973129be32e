package filesystem

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo-lite/internal/todolist"
	"todo-lite/internal/todostore"

	"github.com/charmbracelet/log"
)

func TestLoadMissingFileReturnsEmptyList(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}

	l, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	item, err := l.Add("first", nil, "")
	if err != nil || item.ID != 0 {
		t.Errorf("Add on fresh list = %v, %v", item, err)
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{".todo", "todo.yaml", "todo.toml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "nested", "dir", name)
			s, err := New(path)
			if err != nil {
				t.Fatal(err)
			}

			l := todolist.New()
			for _, d := range []string{"a", "b"} {
				if _, err := l.Add(d, nil, ""); err != nil {
					t.Fatal(err)
				}
			}
			if _, err := l.Add("a.0", nil, "0"); err != nil {
				t.Fatal(err)
			}
			if _, err := l.Complete("1"); err != nil {
				t.Fatal(err)
			}

			if err := s.Save(ctx, l); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Len() != 2 || got.TodoLen() != 1 {
				t.Errorf("Len=%d TodoLen=%d, want 2 and 1", got.Len(), got.TodoLen())
			}
			child, err := got.Resolve("0:0")
			if err != nil || child.Description != "a.0" {
				t.Errorf("Resolve(0:0) = %v, %v", child, err)
			}

			entries, err := os.ReadDir(filepath.Dir(path))
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("expected only the todo file, found %d entries", len(entries))
			}
		})
	}
}

func TestContract(t *testing.T) {
	for _, name := range []string{".todo", "todo.yaml", "todo.toml"} {
		t.Run(name, func(t *testing.T) {
			todostore.RunContractTests(t, func(t *testing.T) todostore.Store {
				s, err := New(filepath.Join(t.TempDir(), name))
				if err != nil {
					t.Fatal(err)
				}
				return s
			})
		})
	}
}

func TestWithFormatOverridesExtension(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "list.json")
	s, err := New(path, WithFormat(todostore.FormatYAML))
	if err != nil {
		t.Fatal(err)
	}
	if s.Format() != todostore.FormatYAML {
		t.Fatalf("Format() = %q", s.Format())
	}

	if err := s.Save(ctx, todolist.New()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "id_pool:") {
		t.Errorf("expected YAML content, got:\n%s", data)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(context.Background()); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestValidateFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todo.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	problems, err := s.ValidateFile(ctx)
	if err != nil || problems != nil {
		t.Fatalf("ValidateFile on missing file = %v, %v", problems, err)
	}

	if err := os.WriteFile(path, []byte(`{"items": [], "id_pool": {"next_id": "1", "recycled_ids": [], "used_ids": []}}`), 0644); err != nil {
		t.Fatal(err)
	}
	problems, err = s.ValidateFile(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) == 0 || problems[0].Path != "id_pool/next_id" {
		t.Errorf("problems = %v, want one at id_pool/next_id", problems)
	}
	if _, err := s.Load(ctx); err == nil {
		t.Error("typed decode should reject the same file")
	}
}

func TestLoggerReceivesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s, err := New(filepath.Join(t.TempDir(), "t.json"), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), todolist.New()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "saved todo file") {
		t.Errorf("expected debug record, got %q", buf.String())
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.todo", filepath.Join(home, ".todo")},
		{"~/lists/work.yaml", filepath.Join(home, "lists", "work.yaml")},
		{"/tmp/x.json", "/tmp/x.json"},
		{"rel/x.json", "rel/x.json"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ExpandPath(""); err == nil {
		t.Error("expected error for empty path")
	}
}
