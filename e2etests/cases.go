package e2etests

import (
	"path/filepath"
	"strings"
)

// 01: Add two items and list them.
func caseAddList(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	result, err := mustRun(r, sandbox, "list")
	if err != nil {
		return "", err
	}
	section(&out, "list before anything is added", result.Stdout)

	for _, s := range []struct{ label, desc string }{
		{"add first item", "buy milk"},
		{"add second item", "call mom"},
	} {
		if err := step(&out, r, n, sandbox, s.label, "add", s.desc); err != nil {
			return "", err
		}
	}
	if err := step(&out, r, n, sandbox, "list", "list"); err != nil {
		return "", err
	}
	return out.String(), nil
}

// 02: Nested sub-lists, tree and flat rendering.
func caseNested(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	steps := []struct {
		label string
		args  []string
	}{
		{"add top-level item", []string{"add", "groceries"}},
		{"add first child", []string{"add", "milk", "--parent", "0"}},
		{"add second child", []string{"add", "eggs", "-p", "0"}},
		{"add grandchild", []string{"add", "whole", "-p", "0:1"}},
		{"add item with deadline", []string{"add", "taxes", "--deadline", "2099-12-31"}},
		{"list tree", []string{"list"}},
		{"list flat", []string{"list", "--flat"}},
	}
	for _, s := range steps {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// 03: Completing hides items at every depth; reopen brings them back.
func caseCompleteReopen(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	steps := []struct {
		label string
		args  []string
	}{
		{"add a", []string{"add", "a"}},
		{"add b", []string{"add", "b"}},
		{"add c under a", []string{"add", "c", "-p", "0"}},
		{"complete two items", []string{"complete", "0:0", "1"}},
		{"list open items", []string{"list"}},
		{"list all items", []string{"list", "--all"}},
		{"reopen b", []string{"reopen", "1"}},
		{"list after reopen", []string{"list"}},
	}
	for _, s := range steps {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// 04: Removed ids are handed out again, most recently freed first.
func caseRemoveRecycle(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	steps := []struct {
		label string
		args  []string
	}{
		{"add a", []string{"add", "a"}},
		{"add b", []string{"add", "b"}},
		{"add c", []string{"add", "c"}},
		{"remove b", []string{"remove", "1"}},
		{"remove a", []string{"rm", "0"}},
		{"add d reuses last freed id", []string{"add", "d"}},
		{"add e reuses the other freed id", []string{"add", "e"}},
		{"add f takes a new id", []string{"add", "f"}},
		{"list", []string{"list"}},
	}
	for _, s := range steps {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// 05: Edit description and deadline; JSON list output.
func caseEditDeadline(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := step(&out, r, n, sandbox, "add overdue item", "add", "report", "-d", "2001-01-01 09:00"); err != nil {
		return "", err
	}
	result, err := mustRun(r, sandbox, "list", "--json")
	if err != nil {
		return "", err
	}
	section(&out, "list json", n.NormalizeJSON([]byte(result.Stdout)))

	steps := []struct {
		label string
		args  []string
	}{
		{"edit description and deadline", []string{"edit", "0", "quarterly report", "--deadline", "2099-06-30"}},
		{"list after edit", []string{"list"}},
		{"clear deadline", []string{"edit", "0", "quarterly report", "--no-deadline"}},
		{"list after clearing deadline", []string{"list"}},
	}
	for _, s := range steps {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// 06: Config lifecycle and a todo file in another format.
func caseConfig(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	yamlFile := filepath.Join(sandbox, "lists", "todo.yaml")
	steps := []struct {
		label string
		args  []string
	}{
		{"config get default", []string{"config", "get", "todo.file"}},
		{"config set todo.file", []string{"config", "set", "todo.file", yamlFile}},
		{"add to configured file", []string{"add", "x"}},
		{"list configured file", []string{"list"}},
		{"config set list.all", []string{"config", "set", "list.all", "true"}},
		{"config list", []string{"config", "list"}},
		{"config validate", []string{"config", "validate"}},
	}
	for _, s := range steps {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}

	result := r.Run(sandbox, "config", "set", "color", "rainbow")
	sectionExitCode(&out, "config set invalid value", result.ExitCode)

	if err := step(&out, r, n, sandbox, "config unset", "config", "unset", "list.all"); err != nil {
		return "", err
	}
	if err := step(&out, r, n, sandbox, "config get after unset", "config", "get", "list.all"); err != nil {
		return "", err
	}
	return out.String(), nil
}

const corruptTodo = `{
  "items": [
    {"id": 0, "description": "a", "completed": false},
    {"id": 1, "description": "b", "completed": false}
  ],
  "id_pool": {"next_id": 2, "recycled_ids": [1], "used_ids": [0, 1]}
}`

// 07: Doctor on a clean file, a corrupt pool, and after --fix.
func caseDoctor(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	steps := []struct {
		label string
		args  []string
	}{
		{"add a", []string{"add", "a"}},
		{"add child", []string{"add", "child", "-p", "0"}},
		{"remove child", []string{"remove", "0:0"}},
		{"doctor clean", []string{"doctor"}},
	}
	for _, s := range steps {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}

	if err := writeTodoFile(sandbox, corruptTodo); err != nil {
		return "", err
	}
	for _, s := range []struct {
		label string
		args  []string
	}{
		{"doctor corrupt", []string{"doctor"}},
		{"doctor fix", []string{"doctor", "--fix"}},
		{"doctor after fix", []string{"doctor"}},
		{"add after fix", []string{"add", "c"}},
	} {
		if err := step(&out, r, n, sandbox, s.label, s.args...); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// 08: Failing commands exit 1 and leave the list untouched.
func caseErrors(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := step(&out, r, n, sandbox, "add a", "add", "a"); err != nil {
		return "", err
	}

	failures := []struct {
		label string
		args  []string
	}{
		{"complete missing item", []string{"complete", "0", "5"}},
		{"remove missing item", []string{"remove", "5"}},
		{"remove below a leaf", []string{"remove", "0:0"}},
		{"add with bad deadline", []string{"add", "x", "-d", "someday"}},
		{"add under missing parent", []string{"add", "x", "-p", "3"}},
		{"edit with bad path", []string{"edit", "0:x", "y"}},
		{"unknown command", []string{"frobnicate"}},
	}
	for _, f := range failures {
		result := r.Run(sandbox, f.args...)
		sectionExitCode(&out, f.label, result.ExitCode)
	}

	if err := step(&out, r, n, sandbox, "list is unchanged", "list"); err != nil {
		return "", err
	}
	return out.String(), nil
}
