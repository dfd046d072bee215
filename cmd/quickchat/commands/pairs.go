package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func pairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List distinct sender/recipient pairs among sent messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			pairs := appCtx.Messages.SenderRecipientPairs()
			sort.Strings(pairs)
			fmt.Fprintln(out, "=== Sender-Recipient Pairs ===")
			for _, p := range pairs {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
