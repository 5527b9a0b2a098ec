package forge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	assetsDir = "assets"
	buildDir  = "build"
	debianDir = "debian"
	tempDir   = "tmp"
)

// scanMode selects the traversal policy of a subtree. Assets and debian
// subtrees share one policy (recurse everywhere, classify every file);
// the build subtree has its own (recurse selectively, classify nothing).
type scanMode int

const (
	scanAssets scanMode = iota
	scanBuild
	scanDebian
)

// modeFor maps a recognized top-level subdirectory name to its scan
// mode.
func modeFor(name string) (scanMode, bool) {
	switch name {
	case assetsDir:
		return scanAssets, true
	case buildDir:
		return scanBuild, true
	case debianDir:
		return scanDebian, true
	}
	return 0, false
}

// scanner accumulates classified files during traversal. It owns the
// one mutable piece of run state and is driven strictly sequentially.
type scanner struct {
	files  *PackageFiles
	dryRun bool
	out    io.Writer
}

// scan walks dir under the given mode.
//
// Assets and debian modes recurse into every subdirectory and classify
// every regular file at every depth. Build mode never classifies: it
// special-cases exactly two child names and skips everything else.
// A child named "tmp" is the stale staging output and is recursively
// deleted (the build reset; suppressed and merely noted in dry-run);
// a child named "debian" is scanned in debian mode.
func (s *scanner) scan(mode scanMode, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			switch mode {
			case scanAssets, scanDebian:
				if err := s.scan(mode, path); err != nil {
					return err
				}
			case scanBuild:
				switch entry.Name() {
				case tempDir:
					if s.dryRun {
						fmt.Fprintln(s.out, "Would reset contents of build/tmp")
						continue
					}
					if err := os.RemoveAll(path); err != nil {
						return fmt.Errorf("resetting %s: %w", path, err)
					}
					fmt.Fprintln(s.out, "Reset contents of build/tmp")
				case debianDir:
					if err := s.scan(scanDebian, path); err != nil {
						return err
					}
				}
			}
		case entry.Type().IsRegular() && mode != scanBuild:
			if err := s.tryInsert(entry.Name(), path); err != nil {
				return err
			}
		}
	}
	return nil
}

// tryInsert classifies a file and records it if it has a role.
// Unclassified files are left untouched on disk and never reported.
func (s *scanner) tryInsert(name, path string) error {
	t, ok := Classify(name)
	if !ok {
		return nil
	}
	if err := s.files.Insert(t, path); err != nil {
		return err
	}
	if s.dryRun {
		fmt.Fprintf(s.out, "Found %s file\n", t)
	}
	return nil
}
