package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbastida/mailfind/internal/ui"
)

func newFromCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from <sender>",
		Short: "List messages from one sender",
		Long: `From prints the messages of a single sender in the order they were
ingested. Sender matching is exact and case-sensitive; senders are
opaque identifiers, not parsed addresses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}

			msgs := engine.BySender(args[0])

			r := ui.NewRenderer(cmd.OutOrStdout(), styles(), cfg.MaxResults)
			r.Heading("MESSAGES FROM " + args[0])
			if len(msgs) == 0 {
				r.Empty("messages from that sender")
				return nil
			}
			r.List(msgs)
			return nil
		},
	}
}
