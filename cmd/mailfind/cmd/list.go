package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbastida/mailfind/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all messages ordered by date",
		Long: `List prints every message in ascending date order; messages sharing
a date keep the order they appear in the mailbox file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}

			r := ui.NewRenderer(cmd.OutOrStdout(), styles(), cfg.MaxResults)
			r.Heading("MESSAGES ORDERED BY DATE")

			n := 0
			for msg := range engine.AllOrdered() {
				if cfg.MaxResults > 0 && n >= cfg.MaxResults {
					break
				}
				r.Line(msg)
				n++
			}
			if n == 0 {
				r.Empty("messages")
				return nil
			}

			stats := engine.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d messages\n", n, stats.Messages)
			return nil
		},
	}
}
