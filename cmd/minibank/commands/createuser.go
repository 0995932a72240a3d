package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-user [name]",
		Short: "Register a new user and print their id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := appCtx.Bank.CreateUser(args[0])
			if err := save(); err != nil {
				return err
			}
			fmt.Printf("Created user %s\nUser ID: %s\n", u.Name(), u.ID())
			return nil
		},
	}
}
