// Package bank implements the core ledger entities and their rules.
//
// A Bank owns Users keyed by user id; a User owns Accounts keyed by account
// number. Balances change only through the validated Deposit and Withdraw
// operations, which also append to the account's statement. The package is
// persistence-free: a Bank converts to and from domain.Snapshot, and storage
// of that snapshot lives elsewhere.
package bank
