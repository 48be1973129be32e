package e2etests

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var update = flag.Bool("update", false, "update expected output files")

func TestE2E(t *testing.T) {
	tdCmd := os.Getenv("TD_CMD")
	if tdCmd == "" {
		t.Skip("TD_CMD environment variable not set; skipping e2e tests")
	}

	runner := &Runner{TdCmd: tdCmd}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			sandbox, err := runner.SetupSandbox()
			if err != nil {
				t.Fatalf("failed to setup sandbox: %v", err)
			}
			defer runner.TeardownSandbox(sandbox)

			actual, err := tc.Fn(runner, NewNormalizer(sandbox), sandbox)
			if err != nil {
				t.Fatalf("test case failed: %v", err)
			}

			expectedFile := filepath.Join("expected", tc.Name+".txt")

			if *update {
				if err := os.MkdirAll("expected", 0755); err != nil {
					t.Fatalf("failed to create expected dir: %v", err)
				}
				if err := os.WriteFile(expectedFile, []byte(actual), 0644); err != nil {
					t.Fatalf("failed to write expected file: %v", err)
				}
				t.Logf("updated %s", expectedFile)
				return
			}

			expected, err := os.ReadFile(expectedFile)
			if err != nil {
				t.Fatalf("no expected file %q (run with -update to generate): %v", expectedFile, err)
			}

			if actual != string(expected) {
				t.Errorf("output mismatch for %s:\n%s", tc.Name, lineDiff(string(expected), actual))
			}
		})
	}
}

func TestCommandDiscovery(t *testing.T) {
	tdCmd := os.Getenv("TD_CMD")
	if tdCmd == "" {
		t.Skip("TD_CMD environment variable not set; skipping e2e tests")
	}

	unknown, err := DiscoverCommands(&Runner{TdCmd: tdCmd})
	if err != nil {
		t.Fatalf("command discovery failed: %v", err)
	}
	if len(unknown) > 0 {
		t.Errorf("discovered commands not in knownCommands registry:\n  %s\n\nAdd these to knownCommands in commands.go and create test cases for them.",
			strings.Join(unknown, "\n  "))
	}
}

func TestParseCommandsFromHelp(t *testing.T) {
	help := `td keeps a nested todo list in a single file.

Usage:
  td [command]

Available Commands:
  add         Add a todo item
  completion  Generate the autocompletion script for the specified shell
  config      Manage configuration settings
  list        Show the todo list

Flags:
  -f, --file string   Todo file
`
	got := parseCommandsFromHelp(help)
	want := []string{"add", "completion", "config", "list"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("parseCommandsFromHelp = %v, want %v", got, want)
	}
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer("/tmp/td-e2e-123")
	if got := n.NormalizeText("Set todo.file = /tmp/td-e2e-123/lists/todo.yaml\n"); got != "Set todo.file = $SANDBOX/lists/todo.yaml\n" {
		t.Errorf("NormalizeText = %q", got)
	}
	got := n.NormalizeJSON([]byte(`{"b":1,"a":{"path":"/tmp/td-e2e-123/x"}}`))
	want := "{\n  \"a\": {\n    \"path\": \"$SANDBOX/x\"\n  },\n  \"b\": 1\n}"
	if got != want {
		t.Errorf("NormalizeJSON = %q, want %q", got, want)
	}
}

// lineDiff produces a simple line-by-line diff between two strings.
func lineDiff(expected, actual string) string {
	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")

	var b strings.Builder
	maxLines := len(expLines)
	if len(actLines) > maxLines {
		maxLines = len(actLines)
	}

	for i := 0; i < maxLines; i++ {
		expLine := ""
		actLine := ""
		if i < len(expLines) {
			expLine = expLines[i]
		}
		if i < len(actLines) {
			actLine = actLines[i]
		}

		if expLine != actLine {
			b.WriteString(fmt.Sprintf("line %d:\n  expected: %q\n  actual:   %q\n", i+1, expLine, actLine))
		}
	}

	if len(expLines) != len(actLines) {
		b.WriteString(fmt.Sprintf("\nexpected %d lines, got %d lines\n", len(expLines), len(actLines)))
	}

	return b.String()
}
