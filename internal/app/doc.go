// Package app wires application dependencies for the CLI.
//
// It builds the concrete snapshot store from Config, loads any prior
// state, and exposes the live Bank plus its store via the Wire struct
// for commands to use.
package app
