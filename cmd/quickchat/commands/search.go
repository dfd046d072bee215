package commands

import (
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <recipient>",
		Short: "List sent messages to a recipient (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderMessages(cmd.OutOrStdout(), appCtx.Messages.SearchByRecipient(args[0]))
			return nil
		},
	}
}
