package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [user-id] [account] [amount]",
		Short: "Deposit into an account",
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
			if err := account.Deposit(amount); err != nil {
				return err
			}
			if err := save(); err != nil {
				return err
			}
			fmt.Printf("Deposited %s\nNew balance: %s\n", amount, account.Balance())
			return nil
		},
	}
}
