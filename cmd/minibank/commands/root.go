package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"minibank/internal/app"
	"minibank/internal/store"
	"minibank/internal/util/logger"
)

var (
	home     string
	bankName string
	logLevel string

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "minibank",
		Short:         "File-backed banking ledger CLI",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init(logLevel); err != nil {
				return err
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".minibank")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			// reset recovers from a corrupt snapshot, so it must stay
			// reachable when the bank cannot be restored: it gets only
			// the store.
			if cmd.Name() == "reset" {
				appCtx = &app.Wire{Store: store.NewBankFileStore(home)}
				return nil
			}

			var err error
			appCtx, err = app.NewWire(app.Config{
				Home:     home,
				BankName: bankName,
				LogLevel: logLevel,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.minibank)")
	root.PersistentFlags().StringVar(&bankName, "bank", "Minibank", "bank display name")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		createUserCmd(),
		openAccountCmd(),
		depositCmd(),
		withdrawCmd(),
		balanceCmd(),
		statementCmd(),
		usersCmd(),
		totalCmd(),
		resetCmd(),
	)
	return root.Execute()
}

// save persists the current bank state; mutating commands call it after
// their operation has succeeded.
func save() error {
	return appCtx.Store.Save(appCtx.Bank.Snapshot())
}
