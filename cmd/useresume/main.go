package main

import (
	"os"

	"github.com/fadilmartias/useresume-gateway/cmd/useresume/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
