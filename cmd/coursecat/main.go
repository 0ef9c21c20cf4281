package main

import (
	"os"

	"coursecat/cmd/coursecat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
