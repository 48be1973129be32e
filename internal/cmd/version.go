package cmd

import (
	"encoding/json"
	"fmt"

	"todo-lite/internal/todostore"

	"github.com/spf13/cobra"
)

// Version is the current version of td. It can be overridden at build
// time via -ldflags "-X todo-lite/internal/cmd.Version=1.2.3".
var Version = "0.3.0"

// VersionJSON is the JSON output format for the version command. The file
// fields are empty when the configuration could not be loaded.
type VersionJSON struct {
	Version    string `json:"version"`
	TodoFile   string `json:"todo_file,omitempty"`
	Format     string `json:"format,omitempty"`
	ConfigFile string `json:"config_file,omitempty"`
}

// fileStore is implemented by stores backed by one file.
type fileStore interface {
	Path() string
	Format() todostore.Format
}

func newVersionCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information and the files in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionJSON{Version: Version}
			// version still works when the config is broken
			if app, err := provider.Get(); err == nil {
				info.ConfigFile = app.ConfigPath
				if fs, ok := app.Store.(fileStore); ok {
					info.TodoFile = fs.Path()
					info.Format = string(fs.Format())
				}
			}

			if provider.JSONOutput {
				return json.NewEncoder(provider.Out).Encode(info)
			}
			fmt.Fprintf(provider.Out, "td version %s\n", Version)
			if info.TodoFile != "" {
				fmt.Fprintf(provider.Out, "  todo file: %s (%s)\n", info.TodoFile, info.Format)
			}
			if info.ConfigFile != "" {
				fmt.Fprintf(provider.Out, "  config:    %s\n", info.ConfigFile)
			}
			return nil
		},
	}
	return cmd
}
