package cmd

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"todo-lite/internal/config"
	"todo-lite/internal/config/yamlstore"
	"todo-lite/internal/deadline"
	"todo-lite/internal/logging"
	"todo-lite/internal/todostore"
	"todo-lite/internal/todostore/filesystem"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	TodoFile   string
	JSONOutput bool
	Verbose    bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		Out:        app.Out,
		Err:        app.Err,
		JSONOutput: app.JSON,
	}
}

func (p *AppProvider) init() (*App, error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	paths, err := config.ResolvePaths(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg, err := yamlstore.New(paths.ConfigFile)
	if err != nil {
		return nil, err
	}
	config.ApplyDefaults(cfg)
	config.ApplyEnvOverrides(cfg)
	if p.TodoFile != "" {
		cfg.SetInMemory(config.KeyTodoFile, p.TodoFile)
	}

	logger := logging.New(errOut, logging.Options{
		Level:   config.GetOr(cfg, config.KeyLogLevel, "warn"),
		Format:  config.GetOr(cfg, config.KeyLogFormat, "text"),
		Verbose: p.Verbose,
	})
	if err := config.Validate(cfg); err != nil {
		logger.Warn("ignoring invalid configuration", "file", paths.ConfigFile, "err", err)
	}

	format, err := todostore.ParseFormat(config.GetOr(cfg, config.KeyTodoFormat, "auto"))
	if err != nil {
		logger.Warn("unknown todo.format, detecting from extension", "err", err)
		format = todostore.FormatAuto
	}
	store, err := filesystem.New(
		config.GetOr(cfg, config.KeyTodoFile, config.DefaultTodoFile),
		filesystem.WithFormat(format),
		filesystem.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved todo file", "path", store.Path(), "format", store.Format(), "config", paths.ConfigFile)

	return &App{
		Store:       store,
		ConfigStore: cfg,
		ConfigPath:  paths.ConfigFile,
		Logger:      logger,
		Deadlines:   deadline.Parser{},
		Now:         time.Now,
		Styles:      stylesFor(out, config.GetOr(cfg, config.KeyColor, "auto")),
		Out:         out,
		Err:         errOut,
		JSON:        p.JSONOutput || config.JSONFromEnv(),
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.ExecuteContext(context.Background())
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "td",
		Short: "A hierarchical todo list for the command line",
		Long: `td keeps a nested todo list in a single file (~/.todo by default).

Items are addressed by colon-separated paths of item ids: "3" is item #3 of
the top-level list, "3:0" is item #0 in the sub-list of item #3. Ids are
shown by "td list" and are reused after an item is removed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.TodoFile, "file", "f", "", "Todo file (default: config todo.file, else ~/.todo)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&provider.ConfigPath, "config", "", "Config file (default: $TD_CONFIG, else $XDG_CONFIG_HOME/td/config.yaml)")

	rootCmd.AddCommand(newAddCmd(provider))
	rootCmd.AddCommand(newEditCmd(provider))
	rootCmd.AddCommand(newCompleteCmd(provider))
	rootCmd.AddCommand(newReopenCmd(provider))
	rootCmd.AddCommand(newRemoveCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newDoctorCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
