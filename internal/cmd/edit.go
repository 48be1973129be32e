package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"todo-lite/internal/todolist"

	"github.com/spf13/cobra"
)

// newEditCmd creates the edit command.
func newEditCmd(provider *AppProvider) *cobra.Command {
	var (
		due        string
		noDeadline bool
	)

	cmd := &cobra.Command{
		Use:   "edit <path> <description>",
		Short: "Change an item's description or deadline",
		Long: `Replace the description of the item at <path>.

The deadline is kept unless --deadline sets a new one or --no-deadline
clears it.

Examples:
  td edit 0 "buy oat milk"
  td edit 0:2 "rye bread" --deadline tomorrow
  td edit 3 "call mom" --no-deadline`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			var dueAt *time.Time
			if cmd.Flags().Changed("deadline") {
				if dueAt, err = app.parseDeadline(due); err != nil {
					return err
				}
			}

			path := args[0]
			var edited *todolist.TodoItem
			err = app.update(cmd.Context(), func(l *todolist.TodoList) error {
				item, err := l.Edit(path, args[1], dueAt)
				if err != nil {
					return fmt.Errorf("editing item %s: %w", path, err)
				}
				if noDeadline {
					if item, err = l.ClearDeadline(path); err != nil {
						return fmt.Errorf("clearing deadline of %s: %w", path, err)
					}
				}
				edited = item
				return nil
			})
			if err != nil {
				return err
			}

			if app.JSON {
				p, _ := todolist.ParsePath(path)
				return json.NewEncoder(app.Out).Encode(ToItemJSON(p, edited, app.now()))
			}
			fmt.Fprintf(app.Out, "%s #%s: %s\n", app.SuccessColor("Updated todo item"), path, edited.Description)
			return nil
		},
	}

	cmd.Flags().StringVarP(&due, "deadline", "d", "", "New deadline")
	cmd.Flags().BoolVar(&noDeadline, "no-deadline", false, "Remove the deadline")
	cmd.MarkFlagsMutuallyExclusive("deadline", "no-deadline")

	return cmd
}
