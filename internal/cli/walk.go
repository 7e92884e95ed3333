package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/holonoms/levelwalk/internal/levelorder"
	"github.com/holonoms/levelwalk/internal/scanner"
)

// runWalk builds the tree, prints its level-order listing, and releases the
// tree. The stages run strictly in sequence: scan, linearize, print, release.
func runWalk(opts *Options) error {
	s, err := scanner.New(opts.Directory, opts.IgnoreFile, os.Stderr)
	if err != nil {
		return fmt.Errorf("unable to create scanner: %w", err)
	}

	var out io.Writer = os.Stdout
	if opts.OutputFile != "" {
		f, err := os.Create(opts.OutputFile)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	root := s.Build()
	lines, err := levelorder.Print(levelorder.Linearize(root), out)
	root.Release()
	if err != nil {
		return fmt.Errorf("unable to write listing: %w", err)
	}

	if opts.OutputFile != "" {
		fmt.Printf("Wrote %d entries to '%s'\n", lines, opts.OutputFile)
	}

	return nil
}
