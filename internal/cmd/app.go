// Package cmd implements the td command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"todo-lite/internal/config"
	"todo-lite/internal/deadline"
	"todo-lite/internal/todolist"
	"todo-lite/internal/todostore"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Store       todostore.Store
	ConfigStore config.Store
	ConfigPath  string // path to config.yaml
	Logger      *log.Logger
	Deadlines   deadline.Parser
	Now         func() time.Time
	Styles      *Styles // nil disables styling
	Out         io.Writer
	Err         io.Writer
	JSON        bool // output in JSON format
}

// Styles are the lipgloss styles used for terminal output.
type Styles struct {
	Success  lipgloss.Style
	Warn     lipgloss.Style
	Done     lipgloss.Style
	Overdue  lipgloss.Style
	Deadline lipgloss.Style
}

// NewStyles builds the styles for a renderer.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:     r.NewStyle().Foreground(lipgloss.Color("214")),
		Done:     r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Overdue:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Deadline: r.NewStyle().Faint(true),
	}
}

// stylesFor picks styles for out according to the color setting
// ("auto", "always" or "never"). It returns nil when output is plain.
func stylesFor(out io.Writer, color string) *Styles {
	switch color {
	case "never":
		return nil
	case "always":
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return NewStyles(r)
	}
	if !isTerminal(out) {
		return nil
	}
	return NewStyles(lipgloss.NewRenderer(out))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SuccessColor renders s in the success style when styling is enabled.
func (a *App) SuccessColor(s string) string {
	if a.Styles == nil {
		return s
	}
	return a.Styles.Success.Render(s)
}

// WarnColor renders s in the warning style when styling is enabled.
func (a *App) WarnColor(s string) string {
	if a.Styles == nil {
		return s
	}
	return a.Styles.Warn.Render(s)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) logger() *log.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return log.New(io.Discard)
}

// parseDeadline parses user deadline text with the app's parser.
func (a *App) parseDeadline(text string) (*time.Time, error) {
	due, err := a.Deadlines.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing deadline %q: %w", text, err)
	}
	return &due, nil
}

// update loads the list, applies fn and saves the result. Nothing is saved
// when fn fails.
func (a *App) update(ctx context.Context, fn func(*todolist.TodoList) error) error {
	list, err := a.Store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading todo list: %w", err)
	}
	if err := fn(list); err != nil {
		return err
	}
	if err := a.Store.Save(ctx, list); err != nil {
		return fmt.Errorf("saving todo list: %w", err)
	}
	return nil
}
