// Package cli provides the command-line interface for levelwalk.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Default version for development/non-release builds
	// GoReleaser overrides this for release builds with the git tag.
	// See .goreleaser.yml
	version = "dev"
)

// NewRootCmd creates the root command
func NewRootCmd(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "levelwalk [directory]",
		Short: "Level-order directory listing",
		Long: `Walks a directory hierarchy, builds an in-memory tree of every visible
entry, and prints one line per entry in breadth-first order as
level:ordinal:path. Hidden entries (names starting with ".") are excluded
along with everything beneath them.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Directory = args[0]
			}
			opts.SetDefaults()
			return runWalk(opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", "Write the listing to a file instead of stdout")
	rootCmd.Flags().StringVar(&opts.IgnoreFile, "ignore", "", "Exclusion file in gitignore format")

	return rootCmd
}
