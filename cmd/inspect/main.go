package main

import (
	"os"

	"ring-inspector/cmd/inspect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
