// Package scanner builds the in-memory tree for a directory hierarchy. It
// reads each directory's entries in the order the filesystem reports them,
// creates one tree node per visible entry, and recurses into subdirectories
// depth-first. Hidden entries (names starting with ".") are excluded
// entirely, along with everything beneath them; an optional exclusion file in
// gitignore format filters further entries out of the tree.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/holonoms/levelwalk/internal/tree"
)

// Scanner walks one directory hierarchy and produces its tree. A Scanner is
// single-use state for one root; diagnostics for directories that cannot be
// opened go to diag.
type Scanner struct {
	root    string
	matcher gitignore.Matcher
	diag    io.Writer
}

// New creates a Scanner rooted at root. The root is resolved to a clean
// absolute path so every node carries the entry's absolute path. ignoreFile,
// when non-empty, names a gitignore-format exclusion file; failing to read it
// is an error (unlike filesystem failures during the walk, which are
// absorbed). A nil diag defaults to os.Stderr.
func New(root, ignoreFile string, diag io.Writer) (*Scanner, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve root path: %w", err)
	}
	if diag == nil {
		diag = os.Stderr
	}

	s := &Scanner{root: filepath.Clean(abs), diag: diag}

	if ignoreFile != "" {
		patterns, err := loadPatterns(ignoreFile)
		if err != nil {
			return nil, err
		}
		s.matcher = gitignore.NewMatcher(patterns)
	}

	return s, nil
}

// loadPatterns parses a gitignore-format file into matcher patterns, skipping
// blank lines and comments.
func loadPatterns(path string) ([]gitignore.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}

	var patterns []gitignore.Pattern
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return patterns, nil
}

// Root returns the resolved absolute root path the scanner walks.
func (s *Scanner) Root() string {
	return s.root
}

// Build creates the root node at level 1 and populates the tree beneath it.
// Filesystem failures during the walk never fail the build: a directory that
// cannot be opened yields no children and a diagnostic line, and an entry
// whose type cannot be determined is kept as a leaf.
func (s *Scanner) Build() *tree.Node {
	root := tree.New(s.root, 1)
	s.populate(root)
	return root
}

// populate enumerates the directory named by parent.Path and appends one
// child per visible entry, recursing into subdirectory children immediately,
// before the remaining siblings. Recursing only appends beneath the child
// just created, so discovery order never changes the final tree shape.
func (s *Scanner) populate(parent *tree.Node) {
	dir, err := os.Open(parent.Path)
	if err != nil {
		fmt.Fprintf(s.diag, "levelwalk: cannot open %s: %v\n", parent.Path, err)
		return
	}
	names, err := dir.Readdirnames(-1)
	dir.Close()
	if err != nil {
		fmt.Fprintf(s.diag, "levelwalk: cannot read %s: %v\n", parent.Path, err)
		return
	}

	for _, name := range names {
		// Hidden entries are excluded wholesale; this also covers the
		// "." and ".." pseudo-entries on platforms that report them.
		if strings.HasPrefix(name, ".") {
			continue
		}

		childPath := parent.Path + "/" + name

		// Entries whose type cannot be determined stay in the tree as
		// leaves; scanning just doesn't recurse into them.
		isDir := false
		if info, err := os.Stat(childPath); err == nil {
			isDir = info.IsDir()
		}

		if s.excluded(childPath, isDir) {
			continue
		}

		parent.AppendChild(tree.New(childPath, parent.Level+1))

		if isDir {
			s.populate(parent.Children.Last)
		}
	}
}

// excluded checks the root-relative path against the exclusion matcher.
func (s *Scanner) excluded(path string, isDir bool) bool {
	if s.matcher == nil {
		return false
	}
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return false
	}
	return s.matcher.Match(strings.Split(rel, "/"), isDir)
}
