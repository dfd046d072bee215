package commands

import (
	"github.com/spf13/cobra"
)

// store <sender> <recipient> <message>: allocate an id and keep the message unsent.
func storeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store <sender> <recipient> <message>",
		Short: "Create a message and store it without sending",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := createMessage(appCtx.Messages, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if err := appCtx.Messages.StoreOnly(msg); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Message stored. ID=%s Hash=%s", msg.ID(), msg.ContentHash())
			return nil
		},
	}
}
