// Package cmd provides the CLI commands for mailfind.
package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mbastida/mailfind/internal/config"
	"github.com/mbastida/mailfind/internal/loader"
	"github.com/mbastida/mailfind/internal/logging"
	"github.com/mbastida/mailfind/internal/search"
	"github.com/mbastida/mailfind/internal/ui"
	"github.com/mbastida/mailfind/pkg/version"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	mailbox    string
	configPath string
	noColor    bool
	debug      bool
}

var (
	opts           rootOptions
	cfg            *config.Config
	loggingCleanup func()
)

// NewRootCmd creates the root command for the mailfind CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mailfind",
		Short: "Index and search a mailbox from the terminal",
		Long: `Mailfind loads a semicolon-separated mailbox file into an in-memory
index and answers three kinds of queries: messages ordered by date,
messages from one sender, and messages containing a keyword.

Nothing persists between runs; every invocation indexes the mailbox
file fresh. Run without arguments for the interactive browser.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), cmd, browseOptions{})
		},
	}

	cmd.SetVersionTemplate("mailfind version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&opts.mailbox, "mailbox", "m", "", "Path to the mailbox file (sender;subject;body;date per line)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the config file")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable ANSI styling")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = setup
	cmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if loggingCleanup != nil {
			loggingCleanup()
		}
	}

	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newFromCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration and wires logging before any command runs.
// Flags override env, env overrides the config file.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if opts.mailbox != "" {
		cfg.Mailbox = opts.mailbox
	}
	if opts.noColor {
		cfg.NoColor = true
	}

	logCfg := logging.Config{
		Level:         cfg.LogLevel,
		FilePath:      cfg.LogFile,
		WriteToStderr: cfg.LogFile == "",
	}
	if opts.debug {
		logCfg.Level = "debug"
	}
	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return err
	}
	loggingCleanup = cleanup
	return nil
}

// newEngine builds an engine and loads the configured mailbox into it.
func newEngine(ctx context.Context) (*search.Engine, error) {
	engine := search.NewEngine(
		search.WithLogger(slog.Default()),
		search.WithKeywordCacheSize(cfg.KeywordCacheSize),
	)
	if _, err := loader.Load(ctx, cfg.Mailbox, engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// styles returns the style set honoring --no-color, NO_COLOR, and pipes.
func styles() ui.Styles {
	return ui.GetStyles(cfg.NoColor || !ui.IsTerminal())
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
