package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mbastida/mailfind/internal/errors"
	"github.com/mbastida/mailfind/internal/store"
	"github.com/mbastida/mailfind/internal/ui"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one message in full",
		Long: `Show prints a single message by its ID. IDs are assigned in mailbox
line order starting at 1, so they are stable for a given file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "message ID must be a positive integer", err).
					WithDetail("id", args[0])
			}

			engine, err := newEngine(cmd.Context())
			if err != nil {
				return err
			}

			msg, err := engine.GetByID(store.MessageID(id))
			if err != nil {
				return err
			}

			ui.NewRenderer(cmd.OutOrStdout(), styles(), 0).Message(msg)
			return nil
		},
	}
}
