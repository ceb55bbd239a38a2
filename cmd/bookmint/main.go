// Package main is the entry point for the bookmint server.
package main

import (
	"os"

	"github.com/bookmint/bookmint/cmd/bookmint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
