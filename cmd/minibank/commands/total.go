package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func totalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the bank-wide balance total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s total: %s\n", appCtx.Bank.Name(), appCtx.Bank.TotalBalance())
			return nil
		},
	}
}
