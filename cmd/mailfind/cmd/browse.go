package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mailerrors "github.com/mbastida/mailfind/internal/errors"
	"github.com/mbastida/mailfind/internal/loader"
	"github.com/mbastida/mailfind/internal/search"
	"github.com/mbastida/mailfind/internal/ui"
)

// browseOptions holds CLI flags for the interactive browser.
type browseOptions struct {
	watch bool
	demo  bool
}

func newBrowseCmd() *cobra.Command {
	var bopts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the mailbox interactively",
		Long: `Browse opens the menu-driven message browser: ordered listing,
search by sender, and search by keyword, with a full view per message.

With --watch, lines appended to the mailbox file while browsing are
ingested live; press r in a result listing to refresh it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), cmd, bopts)
		},
	}

	cmd.Flags().BoolVarP(&bopts.watch, "watch", "w", false, "Ingest lines appended to the mailbox while browsing")
	cmd.Flags().BoolVar(&bopts.demo, "demo", false, "Preload built-in demo messages instead of a mailbox file")

	return cmd
}

func runBrowse(ctx context.Context, _ *cobra.Command, bopts browseOptions) error {
	engine := search.NewEngine(
		search.WithLogger(slog.Default()),
		search.WithKeywordCacheSize(cfg.KeywordCacheSize),
	)

	if bopts.demo {
		if err := loader.SeedMessages(engine); err != nil {
			return err
		}
		return ui.Run(engine, styles())
	}

	if !bopts.watch {
		if _, err := loader.Load(ctx, cfg.Mailbox, engine); err != nil {
			// Browsing an absent mailbox starts empty instead of failing:
			// watch mode may create it later and the menu still works.
			if !mailerrors.IsCode(err, mailerrors.ErrCodeMailboxNotFound) {
				return err
			}
			slog.Warn("mailbox file not found, starting empty",
				slog.String("path", cfg.Mailbox))
		}
		return ui.Run(engine, styles())
	}

	// Watch mode: the watcher does the initial load, then tails the file
	// while the browser runs. Closing the browser cancels the watcher.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	watcher := loader.NewWatcher(cfg.Mailbox, engine, cfg.DebounceWindow())
	g.Go(func() error {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return ui.Run(engine, styles())
	})
	return g.Wait()
}
