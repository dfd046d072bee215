package commands

import (
	"github.com/spf13/cobra"

	"quickchat/internal/domain"
)

// delete <hash>: hard-delete the first sent message whose content hashes to <hash>.
func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hash>",
		Short: "Delete the first sent message with a content hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := appCtx.Messages.DeleteByHash(domain.ContentHash(args[0]))
			if err != nil {
				return err
			}
			if !deleted {
				notice(cmd.OutOrStdout(), "No sent message with hash %s.", args[0])
				return nil
			}
			success(cmd.OutOrStdout(), "Message with hash %s deleted.", args[0])
			return nil
		},
	}
}
