package main

import (
	"os"

	"github.com/msto63/langext/cmd/langext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
