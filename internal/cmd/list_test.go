package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"todo-lite/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// seedList builds:
//
//	#0 groceries
//	  #0 milk
//	  #1 eggs (done)
//	#1 taxes, due 2025-03-01
//	#2 laundry (done)
//	  #0 fold
func seedList(t *testing.T, app *App) {
	t.Helper()
	mustRun(t, app, newAddCmd, "groceries")
	mustRun(t, app, newAddCmd, "milk", "-p", "0")
	mustRun(t, app, newAddCmd, "eggs", "-p", "0")
	mustRun(t, app, newAddCmd, "taxes", "-d", "2025-03-01")
	mustRun(t, app, newAddCmd, "laundry")
	mustRun(t, app, newAddCmd, "fold", "-p", "2")
	mustRun(t, app, newCompleteCmd, "0:1", "2")
}

func TestListEmpty(t *testing.T) {
	app, _ := setupTestApp(t)
	if out := mustRun(t, app, newListCmd); out != "No todo items found.\n" {
		t.Errorf("output = %q", out)
	}

	// only done items is the same as nothing to show
	mustRun(t, app, newAddCmd, "a")
	mustRun(t, app, newCompleteCmd, "0")
	if out := mustRun(t, app, newListCmd); out != "No todo items found.\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListHidesCompletedAtEveryDepth(t *testing.T) {
	app, _ := setupTestApp(t)
	seedList(t, app)

	want := strings.Join([]string{
		"Todo List(2):",
		"[ ] #0: groceries(1)",
		"  [ ] #0: milk",
		"[ ] #1: taxes | deadline: 2025-03-01 23:59:59 +00:00",
		"",
	}, "\n")
	if out := mustRun(t, app, newListCmd); out != want {
		t.Errorf("list output:\n%s\nwant:\n%s", out, want)
	}
}

func TestListAll(t *testing.T) {
	app, _ := setupTestApp(t)
	seedList(t, app)

	want := strings.Join([]string{
		"Todo List(2):",
		"[ ] #0: groceries(1)",
		"  [ ] #0: milk",
		"  [✓] #1: eggs",
		"[ ] #1: taxes | deadline: 2025-03-01 23:59:59 +00:00",
		"[✓] #2: laundry(1)",
		"  [ ] #0: fold",
		"",
	}, "\n")
	if out := mustRun(t, app, newListCmd, "--all"); out != want {
		t.Errorf("list --all output:\n%s\nwant:\n%s", out, want)
	}

	// list.all in config has the same effect, and the flag still wins
	app.ConfigStore.SetInMemory(config.KeyListAll, "true")
	if out := mustRun(t, app, newListCmd); out != want {
		t.Errorf("list with list.all=true:\n%s", out)
	}
	if out := mustRun(t, app, newListCmd, "--all=false"); strings.Contains(out, "eggs") {
		t.Errorf("--all=false still shows done items:\n%s", out)
	}
}

func TestListFlat(t *testing.T) {
	app, _ := setupTestApp(t)
	seedList(t, app)

	want := strings.Join([]string{
		"Todo List(2):",
		"[ ] #0: groceries(1)",
		"[ ] #0:0: milk",
		"[ ] #1: taxes | deadline: 2025-03-01 23:59:59 +00:00",
		"",
	}, "\n")
	if out := mustRun(t, app, newListCmd, "--flat"); out != want {
		t.Errorf("list --flat output:\n%s\nwant:\n%s", out, want)
	}
}

func TestListFlatAllShowsDeepPaths(t *testing.T) {
	app, _ := setupTestApp(t)
	seedList(t, app)
	mustRun(t, app, newAddCmd, "towels", "-p", "2:0")

	want := strings.Join([]string{
		"Todo List(2):",
		"[ ] #0: groceries(1)",
		"[ ] #0:0: milk",
		"[✓] #0:1: eggs",
		"[ ] #1: taxes | deadline: 2025-03-01 23:59:59 +00:00",
		"[✓] #2: laundry(1)",
		"[ ] #2:0: fold(1)",
		"[ ] #2:0:0: towels",
		"",
	}, "\n")
	if out := mustRun(t, app, newListCmd, "--flat", "--all"); out != want {
		t.Errorf("list --flat --all output:\n%s\nwant:\n%s", out, want)
	}

	// hidden laundry hides its whole subtree
	if out := mustRun(t, app, newListCmd, "--flat"); strings.Contains(out, "towels") {
		t.Errorf("descendant of a done item shown:\n%s", out)
	}
}

func TestListJSON(t *testing.T) {
	app, _ := setupTestApp(t)
	seedList(t, app)
	app.JSON = true

	out := mustRun(t, app, newListCmd, "--all")
	var got ListJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.TodoCount != 2 || len(got.Items) != 3 {
		t.Fatalf("todo_count=%d items=%d", got.TodoCount, len(got.Items))
	}
	groceries := got.Items[0]
	if groceries.TodoCount == nil || *groceries.TodoCount != 1 || len(groceries.SubItems) != 2 {
		t.Errorf("groceries = %+v", groceries)
	}
	if groceries.SubItems[1].Path != "0:1" || !groceries.SubItems[1].Completed {
		t.Errorf("eggs = %+v", groceries.SubItems[1])
	}
	if got.Items[1].Deadline == "" || got.Items[1].Overdue {
		t.Errorf("taxes = %+v", got.Items[1])
	}
}

func TestListMarksOverdue(t *testing.T) {
	app, _ := setupTestApp(t)
	mustRun(t, app, newAddCmd, "late", "-d", "2025-01-01")
	mustRun(t, app, newAddCmd, "early", "-d", "2025-12-01")

	r := lipgloss.NewRenderer(app.Out)
	r.SetColorProfile(termenv.ANSI256)
	app.Styles = NewStyles(r)

	out := mustRun(t, app, newListCmd)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("output:\n%s", out)
	}
	overdue := app.Styles.Overdue.Render("| deadline: 2025-01-01 23:59:59 +00:00")
	if !strings.Contains(lines[1], overdue) {
		t.Errorf("overdue deadline not highlighted: %q", lines[1])
	}
	if strings.Contains(lines[2], app.Styles.Overdue.Render("| deadline: 2025-12-01 23:59:59 +00:00")) {
		t.Errorf("future deadline highlighted as overdue: %q", lines[2])
	}
}
