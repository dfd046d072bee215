package commands

import (
	"github.com/spf13/cobra"
)

// send <sender> <recipient> <message>: allocate an id and send.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <sender> <recipient> <message>",
		Short: "Create a message and send it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := createMessage(appCtx.Messages, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if err := appCtx.Messages.Send(msg); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Message sent. ID=%s Hash=%s", msg.ID(), msg.ContentHash())
			return nil
		},
	}
}
