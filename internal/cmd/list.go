package cmd

import (
	"encoding/json"
	"fmt"

	"todo-lite/internal/config"

	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd(provider *AppProvider) *cobra.Command {
	var (
		all  bool
		flat bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the todo list",
		Long: `Show the todo list as a tree.

Done items, and everything under them, are hidden unless --all is given
(or list.all is set in the config). The number in parentheses after an item
counts its open sub-items.

Examples:
  td list
  td list --all
  td list --flat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			showCompleted := all
			if !cmd.Flags().Changed("all") && app.ConfigStore != nil {
				showCompleted = config.GetBool(app.ConfigStore, config.KeyListAll)
			}

			list, err := app.Store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading todo list: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(ListJSON{
					TodoCount: list.TodoLen(),
					Items:     toTreeJSON(list, nil, showCompleted, app.now()),
				})
			}

			if len(list.List(showCompleted)) == 0 {
				fmt.Fprintln(app.Out, "No todo items found.")
				return nil
			}
			fmt.Fprintf(app.Out, "Todo List(%d):\n", list.TodoLen())
			if flat {
				return printFlat(app, list, showCompleted)
			}
			return printItems(app, list, showCompleted)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include done items")
	cmd.Flags().BoolVar(&flat, "flat", false, "One line per item, addressed by full path")

	return cmd
}
