package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show stored messages and free ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderMessages(out, appCtx.Messages.Stored())
			fmt.Fprintf(out, "Free ids: %v\n", appCtx.Messages.AvailableIDs())
			return nil
		},
	}
}
