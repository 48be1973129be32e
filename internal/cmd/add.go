package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"todo-lite/internal/todolist"

	"github.com/spf13/cobra"
)

// newAddCmd creates the add command.
func newAddCmd(provider *AppProvider) *cobra.Command {
	var (
		due    string
		parent string
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a todo item",
		Long: `Add a todo item to the top-level list, or under another item with --parent.

Deadlines accept:
  YYYY-MM-DD HH:MM   exact local time
  YYYY-MM-DD         that day at 23:59:59
  today, tomorrow, nextweek
  +<offset>          e.g. +2d, +3h 30m

Examples:
  td add "buy milk"
  td add "file taxes" --deadline 2025-04-15
  td add "whole wheat" --parent 0:2`,
		Args: cobra.ExactArgs(1),
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

			var (
				added *todolist.TodoItem
				path  todolist.Path
			)
			err = app.update(cmd.Context(), func(l *todolist.TodoList) error {
				item, err := l.Add(args[0], dueAt, parent)
				if err != nil {
					return fmt.Errorf("adding item: %w", err)
				}
				added = item
				if parent != "" {
					path, _ = todolist.ParsePath(parent)
				}
				path = path.Child(item.ID)
				return nil
			})
			if err != nil {
				return err
			}
			app.logger().Debug("added item", "path", path.String())

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(ToItemJSON(path, added, app.now()))
			}
			fmt.Fprintf(app.Out, "%s #%s: %s\n", app.SuccessColor("Added todo item"), path, added.Description)
			return nil
		},
	}

	cmd.Flags().StringVarP(&due, "deadline", "d", "", "Deadline (YYYY-MM-DD [HH:MM], today, tomorrow, nextweek, +2d 3h)")
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "Path of the item to add under (e.g. 0 or 0:2)")

	return cmd
}
