package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [user-id] [account]",
		Short: "Print an account's balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Balance: %s\n", account.Balance())
			return nil
		},
	}
}
