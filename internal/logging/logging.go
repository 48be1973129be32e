// Package logging builds the diagnostic logger used across td.
//
// Diagnostics go to stderr so they never mix with command output.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Options holds the logger configuration as read from config.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // text, json, logfmt
	Verbose   bool   // forces debug level
	Timestamp bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	level := ParseLogLevel(opts.Level)
	if opts.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       ParseLogFormatter(opts.Format),
		ReportTimestamp: opts.Timestamp,
		Prefix:          "td",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLogLevel maps a level name to a log.Level. Unknown names yield warn.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseLogFormatter maps a format name to a log.Formatter.
func ParseLogFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
