package e2etests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TestCase defines a named e2e test scenario.
type TestCase struct {
	Name string
	Fn   func(r *Runner, n *Normalizer, sandbox string) (string, error)
}

// testCases is the ordered registry of all e2e test cases.
var testCases = []TestCase{
	{"01_add_list", caseAddList},
	{"02_nested", caseNested},
	{"03_complete_reopen", caseCompleteReopen},
	{"04_remove_recycle", caseRemoveRecycle},
	{"05_edit_deadline", caseEditDeadline},
	{"06_config", caseConfig},
	{"07_doctor", caseDoctor},
	{"08_errors", caseErrors},
}

// section writes a section header and content to the builder.
func section(out *strings.Builder, label string, content string) {
	out.WriteString("=== ")
	out.WriteString(label)
	out.WriteString(" ===\n")
	out.WriteString(strings.TrimRight(content, "\n"))
	out.WriteString("\n\n")
}

// sectionExitCode writes a section with just an exit code.
func sectionExitCode(out *strings.Builder, label string, exitCode int) {
	out.WriteString("=== ")
	out.WriteString(label)
	out.WriteString(" ===\n")
	out.WriteString(fmt.Sprintf("EXIT_CODE: %d", exitCode))
	out.WriteString("\n\n")
}

// mustRun runs a command and returns the result, failing the test case on error.
func mustRun(r *Runner, sandbox string, args ...string) (RunResult, error) {
	result := r.Run(sandbox, args...)
	if result.ExitCode != 0 {
		return result, fmt.Errorf("command %v failed (exit %d): %s", args, result.ExitCode, result.Stderr)
	}
	return result, nil
}

// step runs a command and records its text output as a section.
func step(out *strings.Builder, r *Runner, n *Normalizer, sandbox, label string, args ...string) error {
	result, err := mustRun(r, sandbox, args...)
	if err != nil {
		return err
	}
	section(out, label, n.NormalizeText(result.Stdout))
	return nil
}

// writeTodoFile replaces the default todo file in sandbox.
func writeTodoFile(sandbox, content string) error {
	return os.WriteFile(filepath.Join(sandbox, ".todo"), []byte(content), 0644)
}
