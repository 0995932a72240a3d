package domain

import "github.com/shopspring/decimal"

// Snapshot is the persisted form of a whole bank: a mapping from user id
// to the user's record. It is the document written to and read from disk.
type Snapshot map[UserID]UserRecord

// UserRecord is the persisted form of a user and the accounts they own.
type UserRecord struct {
	Name     string                          `json:"name"`
	Accounts map[AccountNumber]AccountRecord `json:"accounts"`
}

// AccountRecord is the persisted form of a single account. Transactions
// are optional; a record without them loads as an account with an empty
// statement.
type AccountRecord struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions,omitempty"`
}
