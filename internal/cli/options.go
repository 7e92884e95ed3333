// Package cli provides the command-line interface for levelwalk
package cli

// Options holds the command-line options for a walk
type Options struct {
	// Directory specifies the root directory to walk.
	// If empty, defaults to the current directory (".").
	Directory string

	// OutputFile specifies the path the listing is written to.
	// If empty, the listing goes to stdout.
	OutputFile string

	// IgnoreFile specifies an optional exclusion file in gitignore format.
	// Matched entries (and their subtrees, for directories) are left out of
	// the tree. Hidden entries are always excluded regardless.
	IgnoreFile string
}

// SetDefaults sets default values for unset options
func (o *Options) SetDefaults() {
	if o.Directory == "" {
		o.Directory = "."
	}
}
