package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show the message holding an id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, ok := appCtx.Messages.GetByID(id)
			if !ok {
				notice(cmd.OutOrStdout(), "No message with id %s.", id)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.String())
			return nil
		},
	}
}
