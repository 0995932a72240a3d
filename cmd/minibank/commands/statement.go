package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statement [user-id] [account]",
		Short: "Print an account's transaction history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(args[0], args[1])
			if err != nil {
				return err
			}
			txs := account.Transactions()
			fmt.Printf("Statement for account %s\nCurrent balance: %s\n", account.Number(), account.Balance())
			if len(txs) == 0 {
				fmt.Println("No transactions yet")
				return nil
			}
			for _, tx := range txs {
				fmt.Printf("  %-10s %12s  balance %s\n", tx.Kind, tx.Amount, tx.BalanceAfter)
			}
			return nil
		},
	}
}
