package main

import (
	"os"

	"github.com/spendable-dev/spendable/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
