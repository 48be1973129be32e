package cmd

import (
	"errors"
	"testing"

	"todo-lite/internal/todolist"
)

func TestEditKeepsDeadlineByDefault(t *testing.T) {
	app, store := setupTestApp(t)
	mustRun(t, app, newAddCmd, "taxes", "--deadline", "2025-04-15")

	out := mustRun(t, app, newEditCmd, "0", "file taxes")
	if out != "Updated todo item #0: file taxes\n" {
		t.Errorf("edit output = %q", out)
	}
	item := resolve(t, store, "0")
	if item.Description != "file taxes" {
		t.Errorf("description = %q", item.Description)
	}
	if item.Deadline == nil || *item.Deadline != "2025-04-15 23:59:59 +00:00" {
		t.Errorf("deadline = %v, want it kept", item.Deadline)
	}
}

func TestEditDeadline(t *testing.T) {
	app, store := setupTestApp(t)
	mustRun(t, app, newAddCmd, "groceries")
	mustRun(t, app, newAddCmd, "bread", "-p", "0")

	mustRun(t, app, newEditCmd, "0:0", "rye bread", "--deadline", "nextweek")
	item := resolve(t, store, "0:0")
	if item.Deadline == nil || *item.Deadline != "2025-03-06 23:59:59 +00:00" {
		t.Errorf("deadline = %v", item.Deadline)
	}

	mustRun(t, app, newEditCmd, "0:0", "rye bread", "--no-deadline")
	if item := resolve(t, store, "0:0"); item.Deadline != nil {
		t.Errorf("deadline = %q, want cleared", *item.Deadline)
	}
}

func TestEditErrors(t *testing.T) {
	app, _ := setupTestApp(t)
	mustRun(t, app, newAddCmd, "groceries")

	if _, err := run(t, app, newEditCmd, "3", "x"); !errors.Is(err, todolist.ErrIndexOutOfBounds) {
		t.Errorf("missing item: error = %v, want ErrIndexOutOfBounds", err)
	}
	if _, err := run(t, app, newEditCmd, "0:0", "x"); !errors.Is(err, todolist.ErrNoSublist) {
		t.Errorf("leaf parent: error = %v, want ErrNoSublist", err)
	}
	if _, err := run(t, app, newEditCmd, "0", "x", "--deadline", "today", "--no-deadline"); err == nil {
		t.Error("expected error for conflicting deadline flags")
	}
}
