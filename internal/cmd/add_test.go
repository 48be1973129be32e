package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"todo-lite/internal/deadline"
	"todo-lite/internal/todolist"
)

func TestAddRecyclesRemovedIDs(t *testing.T) {
	app, store := setupTestApp(t)

	if out := mustRun(t, app, newAddCmd, "buy milk"); out != "Added todo item #0: buy milk\n" {
		t.Errorf("add output = %q", out)
	}
	if out := mustRun(t, app, newAddCmd, "call mom"); out != "Added todo item #1: call mom\n" {
		t.Errorf("add output = %q", out)
	}
	mustRun(t, app, newRemoveCmd, "0")
	if out := mustRun(t, app, newAddCmd, "walk dog"); out != "Added todo item #0: walk dog\n" {
		t.Errorf("add after remove = %q, want id 0 reused", out)
	}

	l := loadList(t, store)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Items[0].Description != "call mom" || l.Items[1].Description != "walk dog" {
		t.Errorf("items = %q, %q", l.Items[0].Description, l.Items[1].Description)
	}
}

func TestAddWithDeadline(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2025-03-01", "2025-03-01 23:59:59 +00:00"},
		{"2025-03-01 09:15", "2025-03-01 09:15:00 +00:00"},
		{"tomorrow", "2025-02-28 23:59:59 +00:00"},
		{"+2d 3h", "2025-03-01 13:30:00 +00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			app, store := setupTestApp(t)
			mustRun(t, app, newAddCmd, "taxes", "--deadline", tt.text)

			item := resolve(t, store, "0")
			if item.Deadline == nil || *item.Deadline != tt.want {
				t.Errorf("deadline = %v, want %q", item.Deadline, tt.want)
			}
		})
	}
}

func TestAddInvalidDeadlineSavesNothing(t *testing.T) {
	app, store := setupTestApp(t)

	_, err := run(t, app, newAddCmd, "taxes", "-d", "someday")
	if !errors.Is(err, deadline.ErrInvalidFormat) {
		t.Fatalf("error = %v, want ErrInvalidFormat", err)
	}
	if _, statErr := os.Stat(store.Path()); !os.IsNotExist(statErr) {
		t.Errorf("todo file written after failed add: %v", statErr)
	}
}

func TestAddUnderParent(t *testing.T) {
	app, store := setupTestApp(t)
	mustRun(t, app, newAddCmd, "groceries")
	mustRun(t, app, newAddCmd, "milk", "--parent", "0")

	out := mustRun(t, app, newAddCmd, "whole", "-p", "0:0")
	if out != "Added todo item #0:0:0: whole\n" {
		t.Errorf("nested add output = %q", out)
	}
	if item := resolve(t, store, "0:0:0"); item.Description != "whole" {
		t.Errorf("Resolve(0:0:0) = %q", item.Description)
	}
}

func TestAddParentNotFound(t *testing.T) {
	app, _ := setupTestApp(t)
	mustRun(t, app, newAddCmd, "groceries")

	_, err := run(t, app, newAddCmd, "milk", "--parent", "5")
	if !errors.Is(err, todolist.ErrParentNotFound) {
		t.Errorf("error = %v, want ErrParentNotFound", err)
	}
	_, err = run(t, app, newAddCmd, "milk", "--parent", "a:b")
	if !errors.Is(err, todolist.ErrInvalidPathFormat) {
		t.Errorf("error = %v, want ErrInvalidPathFormat", err)
	}
}

func TestAddJSON(t *testing.T) {
	app, _ := setupTestApp(t)
	app.JSON = true
	mustRun(t, app, newAddCmd, "groceries")

	out := mustRun(t, app, newAddCmd, "milk", "--parent", "0", "--deadline", "today")
	var got ItemJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.ID != 0 || got.Path != "0:0" || got.Description != "milk" || got.Completed {
		t.Errorf("got %+v", got)
	}
	if got.Deadline != "2025-02-27 23:59:59 +00:00" || got.Overdue {
		t.Errorf("deadline = %q overdue = %v", got.Deadline, got.Overdue)
	}
}

func TestAddRequiresDescription(t *testing.T) {
	app, _ := setupTestApp(t)
	if _, err := run(t, app, newAddCmd); err == nil {
		t.Error("expected error without description")
	}
}
