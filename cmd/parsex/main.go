package main

import (
	"os"

	"github.com/msto63/parsex/cmd/parsex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
