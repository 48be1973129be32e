package cmd

import (
	"encoding/json"
	"fmt"

	"todo-lite/internal/todolist"

	"github.com/spf13/cobra"
)

// newRemoveCmd creates the remove command.
func newRemoveCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <path>",
		Aliases: []string{"rm"},
		Short:   "Remove an item and everything under it",
		Long: `Remove the item at <path> together with its sub-list.

The removed id is handed out again by the next add to the same list.

Examples:
  td remove 0
  td remove 0:2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			path := args[0]
			var removed *todolist.TodoItem
			err = app.update(cmd.Context(), func(l *todolist.TodoList) error {
				item, err := l.Remove(path)
				if err != nil {
					return fmt.Errorf("removing item %s: %w", path, err)
				}
				removed = item
				return nil
			})
			if err != nil {
				return err
			}

			if app.JSON {
				p, _ := todolist.ParsePath(path)
				return json.NewEncoder(app.Out).Encode(ToItemJSON(p, removed, app.now()))
			}
			fmt.Fprintf(app.Out, "%s #%s: %s\n", app.WarnColor("Removed todo item"), path, removed.Description)
			return nil
		},
	}
	return cmd
}
