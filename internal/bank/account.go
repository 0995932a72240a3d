package bank

import (
	"github.com/shopspring/decimal"

	"minibank/internal/domain"
)

// Account holds a balance that only Deposit and Withdraw may change.
// The account number is fixed at creation.
type Account struct {
	number       domain.AccountNumber
	balance      decimal.Decimal
	transactions []domain.Transaction
}

func newAccount(number domain.AccountNumber) *Account {
	return &Account{number: number, balance: decimal.Zero}
}

// Number returns the account's immutable identifier.
func (a *Account) Number() domain.AccountNumber { return a.number }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Transactions returns a copy of the statement, oldest entry first.
func (a *Account) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit increases the balance by amount. The amount must be strictly
// positive; a failed deposit leaves the account untouched.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, domain.Transaction{
		Kind:         domain.TxDeposit,
		Amount:       amount,
		BalanceAfter: a.balance,
	})
	return nil
}

// Withdraw decreases the balance by amount. The amount must be strictly
// positive and no greater than the balance, so the balance never goes
// negative; a failed withdrawal leaves the account untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return domain.ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, domain.Transaction{
		Kind:         domain.TxWithdrawal,
		Amount:       amount,
		BalanceAfter: a.balance,
	})
	return nil
}
