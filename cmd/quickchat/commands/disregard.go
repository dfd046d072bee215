package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func disregardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disregard <id>",
		Short: "Drop a message and free its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, ok := appCtx.Messages.GetByID(id)
			if !ok {
				return fmt.Errorf("no message with id %s", id)
			}
			if err := appCtx.Messages.Disregard(msg); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Message %s disregarded.", id)
			return nil
		},
	}
}
