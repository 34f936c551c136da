// Package main is the entry point for pgedge-agrigen.
package main

import (
	"fmt"
	"os"

	"github.com/pgEdge/pgedge-agrigen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
