package e2etests

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes td commands against a sandbox directory.
type Runner struct {
	TdCmd string // path to td binary
}

// SetupSandbox creates a fresh directory that serves as HOME for the
// commands of one test case.
func (r *Runner) SetupSandbox() (string, error) {
	dir, err := os.MkdirTemp("", "td-e2e-*")
	if err != nil {
		return "", fmt.Errorf("setup sandbox failed: %w", err)
	}
	// macOS hands out /var paths that resolve to /private/var
	return filepath.EvalSymlinks(dir)
}

// TeardownSandbox removes a sandbox directory.
func (r *Runner) TeardownSandbox(path string) error {
	return os.RemoveAll(path)
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes a td command with HOME and the config file inside sandbox,
// the clock zone fixed to UTC, and every TD_ override cleared.
func (r *Runner) Run(sandbox string, args ...string) RunResult {
	cmd := exec.Command(r.TdCmd, args...)
	cmd.Env = sandboxEnv(sandbox)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

func sandboxEnv(sandbox string) []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "TD_") || strings.HasPrefix(kv, "HOME=") ||
			strings.HasPrefix(kv, "XDG_CONFIG_HOME=") || strings.HasPrefix(kv, "TZ=") {
			continue
		}
		env = append(env, kv)
	}
	if sandbox == "" {
		return append(env, "TZ=UTC")
	}
	return append(env,
		"HOME="+sandbox,
		"TD_CONFIG="+filepath.Join(sandbox, "config.yaml"),
		"TZ=UTC",
	)
}
