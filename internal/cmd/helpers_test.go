package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"todo-lite/internal/config"
	"todo-lite/internal/config/yamlstore"
	"todo-lite/internal/deadline"
	"todo-lite/internal/todolist"
	"todo-lite/internal/todostore/filesystem"

	"github.com/spf13/cobra"
)

// testNow is the fixed clock used by command tests.
var testNow = time.Date(2025, 2, 27, 10, 30, 0, 0, time.UTC)

func setupTestApp(t *testing.T) (*App, *filesystem.Store) {
	t.Helper()
	dir := t.TempDir()
	store, err := filesystem.New(filepath.Join(dir, "todo.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg, err := yamlstore.New(cfgPath)
	if err != nil {
		t.Fatalf("failed to create config store: %v", err)
	}
	config.ApplyDefaults(cfg)

	clock := func() time.Time { return testNow }
	return &App{
		Store:       store,
		ConfigStore: cfg,
		ConfigPath:  cfgPath,
		Deadlines:   deadline.Parser{Now: clock, Location: time.UTC},
		Now:         clock,
		Out:         &bytes.Buffer{},
		Err:         &bytes.Buffer{},
	}, store
}

// run executes the command built by newCmd with args and returns what it
// wrote to app.Out.
func run(t *testing.T, app *App, newCmd func(*AppProvider) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := app.Out.(*bytes.Buffer)
	out.Reset()
	if args == nil {
		args = []string{}
	}
	cmd := newCmd(NewTestProvider(app))
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(app.Err)
	err := cmd.Execute()
	return out.String(), err
}

// mustRun is run that fails the test on error.
func mustRun(t *testing.T, app *App, newCmd func(*AppProvider) *cobra.Command, args ...string) string {
	t.Helper()
	out, err := run(t, app, newCmd, args...)
	if err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out
}

func loadList(t *testing.T, store *filesystem.Store) *todolist.TodoList {
	t.Helper()
	l, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load list: %v", err)
	}
	return l
}

func resolve(t *testing.T, store *filesystem.Store, path string) *todolist.TodoItem {
	t.Helper()
	item, err := loadList(t, store).Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", path, err)
	}
	return item
}
