package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"minibank/internal/domain"
)

func openAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-account [user-id]",
		Short: "Open a zero-balance account for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := appCtx.Bank.User(domain.UserID(args[0]))
			if err != nil {
				return err
			}
			number := u.OpenAccount()
			if err := save(); err != nil {
				return err
			}
			fmt.Printf("Opened account for %s\nAccount number: %s\n", u.Name(), number)
			return nil
		},
	}
}
