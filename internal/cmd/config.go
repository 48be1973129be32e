package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"todo-lite/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command with subcommands.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage td configuration settings.

Configuration is stored as flat key-value pairs in config.yaml. Core keys:
  todo.file    path of the todo file (default ~/.todo)
  todo.format  auto, json, yaml or toml
  list.all     show done items by default (true/false)
  log.level    debug, info, warn or error
  log.format   text, json or logfmt
  color        auto, always or never

Subcommands:
  get       Get a configuration value
  set       Set a configuration value
  list      List all configuration values
  unset     Remove a configuration value
  validate  Validate configuration`,
	}

	cmd.AddCommand(newConfigGetCmd(provider))
	cmd.AddCommand(newConfigSetCmd(provider))
	cmd.AddCommand(newConfigListCmd(provider))
	cmd.AddCommand(newConfigUnsetCmd(provider))
	cmd.AddCommand(newConfigValidateCmd(provider))

	return cmd
}

// newConfigGetCmd creates the "config get" subcommand.
func newConfigGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the effective value of a configuration key, including defaults and
environment overrides.

Prints the bare value if the key is set, or "key (not set)" if missing.

Examples:
  td config get todo.file
  td config get list.all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, ok := app.ConfigStore.Get(key)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
					"set":   ok,
				})
			}

			if ok {
				fmt.Fprintln(app.Out, value)
			} else {
				fmt.Fprintf(app.Out, "%s (not set)\n", key)
			}
			return nil
		},
	}
	return cmd
}

// newConfigSetCmd creates the "config set" subcommand.
func newConfigSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration key to a value and save it to config.yaml.

Values of core keys are checked before saving; custom keys are stored as is.

Examples:
  td config set todo.file ~/work.todo
  td config set todo.format yaml
  td config set list.all true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := config.ValidateValue(key, value); err != nil {
				return err
			}
			if err := app.ConfigStore.Set(key, value); err != nil {
				return fmt.Errorf("setting config: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"key":   key,
					"value": value,
				})
			}
			fmt.Fprintf(app.Out, "Set %s = %s\n", key, value)
			return nil
		},
	}
	return cmd
}

// newConfigListCmd creates the "config list" subcommand.
func newConfigListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all effective configuration key-value pairs, sorted by key.

Examples:
  td config list
  td config list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			all := app.ConfigStore.All()
			if app.JSON {
				return json.NewEncoder(app.Out).Encode(all)
			}

			if len(all) == 0 {
				fmt.Fprintln(app.Out, "No configuration set")
				return nil
			}
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(app.Out, "%s = %s\n", k, all[k])
			}
			return nil
		},
	}
	return cmd
}

// newConfigUnsetCmd creates the "config unset" subcommand.
func newConfigUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Long: `Remove a key from config.yaml. Core keys fall back to their defaults.

Examples:
  td config unset todo.format`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			if err := app.ConfigStore.Unset(key); err != nil {
				return fmt.Errorf("unsetting config: %w", err)
			}
			config.ApplyDefaults(app.ConfigStore)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{"key": key, "status": "unset"})
			}
			fmt.Fprintf(app.Out, "Unset %s\n", key)
			return nil
		},
	}
	return cmd
}

// newConfigValidateCmd creates the "config validate" subcommand.
func newConfigValidateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Check every core key against its allowed values.

Exits non-zero when a value is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			verr := config.Validate(app.ConfigStore)
			if app.JSON {
				result := map[string]interface{}{"valid": verr == nil, "file": app.ConfigPath}
				if verr != nil {
					result["error"] = verr.Error()
				}
				if err := json.NewEncoder(app.Out).Encode(result); err != nil {
					return err
				}
				return verr
			}
			if verr != nil {
				return verr
			}
			fmt.Fprintln(app.Out, "Configuration is valid.")
			return nil
		},
	}
	return cmd
}
