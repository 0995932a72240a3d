package domain

import "github.com/shopspring/decimal"

// UserID uniquely identifies a user within a bank.
type UserID string

// String returns the string form of the user identifier.
func (id UserID) String() string { return string(id) }

// AccountNumber uniquely identifies an account within a user's set.
type AccountNumber string

// String returns the string form of the account number.
func (n AccountNumber) String() string { return string(n) }

// TransactionKind labels a statement entry.
type TransactionKind string

const (
	// TxDeposit marks a balance increase.
	TxDeposit TransactionKind = "DEPOSIT"
	// TxWithdrawal marks a balance decrease.
	TxWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is a single statement entry recorded by a validated
// deposit or withdrawal.
type Transaction struct {
	Kind         TransactionKind `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}
