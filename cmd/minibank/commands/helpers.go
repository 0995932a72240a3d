package commands

import (
	"fmt"

	"github.com/shopspring/decimal"

	"minibank/internal/bank"
	"minibank/internal/domain"
)

// resolveAccount walks user id -> account number through the live bank.
func resolveAccount(userID, number string) (*bank.Account, error) {
	u, err := appCtx.Bank.User(domain.UserID(userID))
	if err != nil {
		return nil, err
	}
	return u.Account(domain.AccountNumber(number))
}

// parseAmount converts a CLI argument into a decimal amount. A string that
// is not a number at all is the same class of bad input as a non-positive
// amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, s)
	}
	return amount, nil
}
