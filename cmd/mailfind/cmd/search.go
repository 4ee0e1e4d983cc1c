package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbastida/mailfind/internal/store"
	"github.com/mbastida/mailfind/internal/ui"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <word>",
		Short: "List messages containing a keyword",
		Long: `Search prints every message whose subject or body contains the given
word. The word is lowercased and matched against whole tokens only:
no prefix, substring, or fuzzy matching.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}

			token := store.NormalizeToken(args[0])
			msgs := engine.ByKeyword(token)

			r := ui.NewRenderer(cmd.OutOrStdout(), styles(), cfg.MaxResults)
			r.Heading("MESSAGES MATCHING " + token)
			if len(msgs) == 0 {
				r.Empty("matches")
				return nil
			}
			r.List(msgs)
			return nil
		},
	}
}
