package main

import (
	"os"

	"github.com/locgen/locgen/cmd/locgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
