package main

import (
	"os"

	"github.com/viant/cmdchain/cmd/cmdchain/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
