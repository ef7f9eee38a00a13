package main

import (
	"os"

	"ndagen/cmd/ndactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
