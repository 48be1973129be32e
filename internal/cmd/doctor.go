package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"todo-lite/internal/todostore"

	"github.com/spf13/cobra"
)

// DoctorResult represents the output of the doctor command.
type DoctorResult struct {
	Problems []string `json:"problems"`
	Fixed    int      `json:"fixed"`
}

// documentLoader is implemented by stores that can return the raw document,
// before it is turned into a list.
type documentLoader interface {
	LoadDocument(ctx context.Context) (*todostore.Document, error)
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd(provider *AppProvider) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the todo file for inconsistencies",
		Long: `Check the todo file for inconsistencies.

Checks for:
- Values that do not match the file schema (negative ids, wrong types)
- Duplicate ids within one list
- Ids missing from, or left over in, a list's id pool
- Id pools that would hand out an id that is still in use

With --fix the id pools are rebuilt from the items actually present and
duplicate ids are renumbered. Schema problems are only reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var problems []string
			fv, rawChecked := app.Store.(fileValidator)
			if rawChecked {
				schemaProblems, err := fv.ValidateFile(ctx)
				if err != nil {
					return fmt.Errorf("doctor failed: %w", err)
				}
				problems = appendSchemaProblems(problems, schemaProblems)
			}

			doc, err := loadDocument(ctx, app)
			if err != nil {
				// a file the schema already rejected may not decode at all
				if len(problems) == 0 {
					return fmt.Errorf("doctor failed: %w", err)
				}
				app.logger().Debug("skipping id pool checks", "err", err)
				problems = append(problems, "file cannot be loaded until the schema problems are fixed")
				return writeDoctorResult(app, problems, 0, fix)
			}

			if !rawChecked {
				schemaProblems, err := todostore.ValidateDocument(doc)
				if err != nil {
					return fmt.Errorf("doctor failed: %w", err)
				}
				problems = appendSchemaProblems(problems, schemaProblems)
			}

			list := doc.List()
			problems = append(problems, list.Check()...)

			fixed := 0
			if fix {
				if fixed = list.RepairPools(); fixed > 0 {
					if err := app.Store.Save(ctx, list); err != nil {
						return fmt.Errorf("saving repaired list: %w", err)
					}
					app.logger().Warn("rebuilt id pools", "lists", fixed)
				}
			}

			return writeDoctorResult(app, problems, fixed, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Fix problems (default is check only)")

	return cmd
}

// fileValidator is implemented by stores that can check the raw file against
// the schema before decoding it.
type fileValidator interface {
	ValidateFile(ctx context.Context) ([]todostore.Problem, error)
}

func appendSchemaProblems(problems []string, found []todostore.Problem) []string {
	for _, p := range found {
		problems = append(problems, "schema: "+p.String())
	}
	return problems
}

func writeDoctorResult(app *App, problems []string, fixed int, fix bool) error {
	if app.JSON {
		if problems == nil {
			problems = []string{}
		}
		return json.NewEncoder(app.Out).Encode(DoctorResult{Problems: problems, Fixed: fixed})
	}

	if len(problems) == 0 {
		fmt.Fprintln(app.Out, "No problems found.")
		return nil
	}

	fmt.Fprintf(app.Out, "Found %d problems:\n", len(problems))
	for _, problem := range problems {
		fmt.Fprintf(app.Out, "  - %s\n", problem)
	}

	if fixed > 0 {
		fmt.Fprintf(app.Out, "\n%s\n", app.SuccessColor(fmt.Sprintf("Rebuilt %d id pools.", fixed)))
	} else if !fix {
		fmt.Fprintln(app.Out, "\nRun 'td doctor --fix' to fix these issues.")
	}
	return nil
}

// loadDocument returns the stored document, or an empty one when there is no
// file yet.
func loadDocument(ctx context.Context, app *App) (*todostore.Document, error) {
	if dl, ok := app.Store.(documentLoader); ok {
		doc, err := dl.LoadDocument(ctx)
		if err != nil || doc != nil {
			return doc, err
		}
	}
	list, err := app.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return todostore.FromList(list), nil
}
