package e2etests

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// knownCommands is the registry of all td commands covered by test cases.
// Subcommands use space-separated format (e.g., "config get").
var knownCommands = map[string]bool{
	"add":             true,
	"edit":            true,
	"complete":        true,
	"reopen":          true,
	"remove":          true,
	"list":            true,
	"doctor":          true,
	"config get":      true,
	"config set":      true,
	"config list":     true,
	"config unset":    true,
	"config validate": true,
	"version":         true,
}

// ignoredCommands are commands discovered via --help that we intentionally skip.
var ignoredCommands = map[string]bool{
	"help":       true,
	"completion": true,
}

// commandLinePattern matches "  <command>  <description>" in help output.
var commandLinePattern = regexp.MustCompile(`^\s{2}(\S+)\s{2,}`)

// DiscoverCommands runs td --help and each command's --help and returns
// the discovered commands that are not in knownCommands.
func DiscoverCommands(r *Runner) ([]string, error) {
	result := r.Run("", "--help")
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("td --help failed: %s", result.Stderr)
	}

	discovered := make(map[string]bool)
	for _, cmd := range parseCommandsFromHelp(result.Stdout) {
		if ignoredCommands[cmd] {
			continue
		}
		sub := r.Run("", cmd, "--help")
		if sub.ExitCode != 0 {
			return nil, fmt.Errorf("td %s --help failed: %s", cmd, sub.Stderr)
		}
		subs := parseCommandsFromHelp(sub.Stdout)
		if len(subs) == 0 {
			discovered[cmd] = true
			continue
		}
		for _, s := range subs {
			discovered[cmd+" "+s] = true
		}
	}

	var unknown []string
	for cmd := range discovered {
		if !knownCommands[cmd] {
			unknown = append(unknown, cmd)
		}
	}
	sort.Strings(unknown)
	return unknown, nil
}

// parseCommandsFromHelp extracts command names from the "Available Commands:"
// section of cobra help output.
func parseCommandsFromHelp(helpOutput string) []string {
	var commands []string
	inSection := false
	for _, line := range strings.Split(helpOutput, "\n") {
		if strings.HasPrefix(line, "Available Commands:") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if m := commandLinePattern.FindStringSubmatch(line); len(m) > 1 {
			commands = append(commands, m[1])
		}
	}
	return commands
}
