package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mbastida/mailfind/internal/loader"
	"github.com/mbastida/mailfind/internal/search"
	"github.com/mbastida/mailfind/internal/ui"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Tail the mailbox file and print messages as they arrive",
		Long: `Watch ingests the mailbox file, then follows it and prints every
message appended afterwards. The mailbox is append-only: rewrites and
truncations are ignored. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := ui.NewRenderer(cmd.OutOrStdout(), styles(), 0)

			engine := search.NewEngine(
				search.WithKeywordCacheSize(cfg.KeywordCacheSize),
				search.WithIngestHook(r.Line),
			)

			watcher := loader.NewWatcher(cfg.Mailbox, engine, cfg.DebounceWindow())
			err := watcher.Run(ctx)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}
