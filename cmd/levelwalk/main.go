// Package main is the main package for the levelwalk CLI.
package main

import (
	"os"

	"github.com/holonoms/levelwalk/internal/cli"
)

func main() {
	opts := &cli.Options{}
	if err := cli.NewRootCmd(opts).Execute(); err != nil {
		os.Exit(1)
	}
}
