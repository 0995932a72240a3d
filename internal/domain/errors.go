package domain

import "errors"

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount
	// is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUserNotFound is returned when a user id is unknown to the bank.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when an account number is not owned
	// by the user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSnapshotWrite is returned when the filesystem rejects a save.
	ErrSnapshotWrite = errors.New("snapshot write failed")

	// ErrSnapshotCorrupt is returned when persisted data exists but
	// cannot be decoded into a valid snapshot.
	ErrSnapshotCorrupt = errors.New("snapshot data is corrupt")
)
