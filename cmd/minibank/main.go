package main

import (
	"os"

	"minibank/cmd/minibank/commands"
	"minibank/internal/util/logger"
)

func main() {
	defer func() { _ = logger.Sync() }()
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
