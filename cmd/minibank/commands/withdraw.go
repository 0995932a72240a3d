package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [user-id] [account] [amount]",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(args[0], args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			if err := account.Withdraw(amount); err != nil {
				return err
			}
			if err := save(); err != nil {
				return err
			}
			fmt.Printf("Withdrew %s\nNew balance: %s\n", amount, account.Balance())
			return nil
		},
	}
}
