package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users := appCtx.Bank.Users()
			if len(users) == 0 {
				fmt.Println("No users yet")
				return nil
			}
			for _, u := range users {
				fmt.Printf("%s  %s (%d accounts)\n", u.ID(), u.Name(), len(u.Accounts()))
				for _, a := range u.Accounts() {
					fmt.Printf("    %s  balance %s\n", a.Number(), a.Balance())
				}
			}
			return nil
		},
	}
}
