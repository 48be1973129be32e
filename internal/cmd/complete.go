package cmd

import (
	"encoding/json"
	"fmt"

	"todo-lite/internal/todolist"

	"github.com/spf13/cobra"
)

// newCompleteCmd creates the complete command.
func newCompleteCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <path>...",
		Short: "Mark items as done",
		Long: `Mark one or more items as done. Completing a done item is a no-op.

If any path fails to resolve nothing is saved.

Examples:
  td complete 0
  td complete 0:1 0:2 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompleted(cmd, provider, args, true)
		},
	}
	return cmd
}

// newReopenCmd creates the reopen command.
func newReopenCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reopen <path>...",
		Short: "Mark done items as not done",
		Long: `Clear the done mark of one or more items.

Examples:
  td reopen 0
  td reopen 0:1 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setCompleted(cmd, provider, args, false)
		},
	}
	return cmd
}

func setCompleted(cmd *cobra.Command, provider *AppProvider, paths []string, done bool) error {
	app, err := provider.Get()
	if err != nil {
		return err
	}

	op, verb, action := (*todolist.TodoList).Complete, "Completed", "completing"
	if !done {
		op, verb, action = (*todolist.TodoList).Reopen, "Reopened", "reopening"
	}

	items := make([]*todolist.TodoItem, 0, len(paths))
	err = app.update(cmd.Context(), func(l *todolist.TodoList) error {
		for _, path := range paths {
			item, err := op(l, path)
			if err != nil {
				return fmt.Errorf("%s %s: %w", action, path, err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if app.JSON {
		now := app.now()
		result := make([]ItemJSON, 0, len(items))
		for i, item := range items {
			p, _ := todolist.ParsePath(paths[i])
			result = append(result, ToItemJSON(p, item, now))
		}
		return json.NewEncoder(app.Out).Encode(result)
	}
	for i, item := range items {
		fmt.Fprintf(app.Out, "%s #%s: %s\n", app.SuccessColor(verb+" todo item"), paths[i], item.Description)
	}
	return nil
}
