package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func longestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "longest",
		Short: "Show the longest sent message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, ok := appCtx.Messages.LongestMessage()
			if !ok {
				notice(cmd.OutOrStdout(), "No messages sent yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.String())
			return nil
		},
	}
}
