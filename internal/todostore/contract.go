package todostore

import (
	"context"
	"testing"
	"time"

	"todo-lite/internal/todolist"
	"todo-lite/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// RunContractTests runs the contract test suite against a Store
// implementation. Each implementation calls this with a factory returning a
// fresh, empty store.
func RunContractTests(t *testing.T, factory func(t *testing.T) Store) {
	t.Run("LoadEmpty", func(t *testing.T) { testLoadEmpty(t, factory(t)) })
	t.Run("SaveLoad", func(t *testing.T) { testSaveLoad(t, factory(t)) })
	t.Run("Overwrite", func(t *testing.T) { testOverwrite(t, factory(t)) })
	t.Run("Deadlines", func(t *testing.T) { testDeadlines(t, factory(t)) })
	t.Run("RecyclingSurvives", func(t *testing.T) { testRecyclingSurvives(t, factory(t)) })
	t.Run("Churn", func(t *testing.T) { testChurn(t, factory) })
}

func saveAndReload(t *testing.T, s Store, l *todolist.TodoList) *todolist.TodoList {
	t.Helper()
	ctx := context.Background()
	if err := s.Save(ctx, l); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	return got
}

func testLoadEmpty(t *testing.T, s Store) {
	l, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("fresh store has %d items", l.Len())
	}
	item, err := l.Add("first", nil, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if item.ID != 0 {
		t.Errorf("first id = %d, want 0", item.ID)
	}
}

func testSaveLoad(t *testing.T, s Store) {
	want := todolist.New()
	if err := testutil.NewListGenerator(want, 1).GenerateTree(3, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := want.Complete("1:0"); err != nil {
		t.Fatal(err)
	}

	got := saveAndReload(t, s, want)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func testOverwrite(t *testing.T, s Store) {
	first := todolist.New()
	if _, err := first.Add("gone", nil, ""); err != nil {
		t.Fatal(err)
	}
	saveAndReload(t, s, first)

	got := saveAndReload(t, s, todolist.New())
	if got.Len() != 0 {
		t.Errorf("second Save should replace the list, found %d items", got.Len())
	}
}

func testDeadlines(t *testing.T, s Store) {
	l := todolist.New()
	due := time.Date(2025, 3, 1, 23, 59, 59, 0, time.FixedZone("", 8*60*60))
	if _, err := l.Add("taxes", &due, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Add("receipts", &due, "0"); err != nil {
		t.Fatal(err)
	}

	got := saveAndReload(t, s, l)
	for _, path := range []string{"0", "0:0"} {
		item, err := got.Resolve(path)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", path, err)
		}
		if item.Deadline == nil || *item.Deadline != "2025-03-01 23:59:59 +08:00" {
			t.Errorf("deadline of %s = %v", path, item.Deadline)
		}
	}
}

func testRecyclingSurvives(t *testing.T, s Store) {
	l := todolist.New()
	for _, d := range []string{"a", "b", "c", "d"} {
		if _, err := l.Add(d, nil, ""); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range []string{"1", "3"} {
		if _, err := l.Remove(p); err != nil {
			t.Fatal(err)
		}
	}

	got := saveAndReload(t, s, l)
	for _, want := range []int{3, 1, 4} {
		item, err := got.Add("again", nil, "")
		if err != nil {
			t.Fatal(err)
		}
		if item.ID != want {
			t.Errorf("id after reload = %d, want %d", item.ID, want)
		}
	}
}

func testChurn(t *testing.T, factory func(t *testing.T) Store) {
	for seed := int64(1); seed <= 3; seed++ {
		want := todolist.New()
		if err := testutil.NewListGenerator(want, seed).GenerateChurn(100); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		got := saveAndReload(t, factory(t), want)
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("seed %d: round trip mismatch (-want +got):\n%s", seed, diff)
		}
		if problems := got.Check(); len(problems) != 0 {
			t.Errorf("seed %d: reloaded pools inconsistent: %v", seed, problems)
		}
	}
}
