// Package main is the entry point for the bmint CLI.
package main

import "github.com/bookmint/bookmint/cmd/bmint/cmd"

func main() {
	cmd.Execute()
}
