// Package commands defines the minibank CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - create-user    Register a new user and print their id
//   - open-account   Open a zero-balance account for a user
//   - deposit        Deposit into an account
//   - withdraw       Withdraw from an account
//   - balance        Print an account's balance
//   - statement      Print an account's transaction history
//   - users          List all users
//   - total          Print the bank-wide balance total
//   - reset          Delete all persisted data
//
// # Implementation
//
// The root command restores the bank from disk in PersistentPreRunE, so
// handlers share one app context. Mutating commands save a fresh snapshot
// only after their operation has succeeded.
package commands
