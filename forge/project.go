package forge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// requiredFiles are the roles that must be discovered before staging is
// allowed; the Binary role is checked separately against the resolved
// build output path.
var requiredFiles = []FileType{Control, Changelog, Copyright}

// Project is a fully discovered and validated run: the classified file
// set is complete, the required roles are present, and the built binary
// exists at its expected path.
type Project struct {
	// Vars are the resolved build parameters.
	Vars Variables
	// Files is the classified file set, the binary included.
	Files *PackageFiles

	dryRun bool
	out    io.Writer
}

// New discovers and validates the project.
//
// It verifies the built binary at <project>/<target subpath>/<name>,
// scans the recognized subdirectories (assets, build, debian) in their
// respective modes plus the project root's own files, and enforces the
// required-role invariant. In dry-run mode every discovery is reported
// on out and the build/tmp reset is suppressed, but validation is
// identical. Progress lines go to out; pass nil for os.Stdout.
func New(vars Variables, dryRun bool, out io.Writer) (*Project, error) {
	if out == nil {
		out = os.Stdout
	}

	files := NewPackageFiles()
	s := &scanner{files: files, dryRun: dryRun, out: out}

	binary := vars.BinaryPath()
	info, err := os.Stat(binary)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("project binary not found at %s", binary)
	}
	if err := files.Insert(Binary, binary); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(vars.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}
	for _, entry := range entries {
		path := filepath.Join(vars.ProjectDir, entry.Name())
		switch {
		case entry.IsDir():
			if mode, ok := modeFor(entry.Name()); ok {
				if err := s.scan(mode, path); err != nil {
					return nil, err
				}
			}
		case entry.Type().IsRegular():
			// The project manifest has an extension outside the
			// classification grammar, so it falls through harmlessly.
			if err := s.tryInsert(entry.Name(), path); err != nil {
				return nil, err
			}
		}
	}

	for _, t := range requiredFiles {
		if _, ok := files.Path(t); !ok {
			return nil, fmt.Errorf("could not locate a %s file", t)
		}
	}

	return &Project{Vars: vars, Files: files, dryRun: dryRun, out: out}, nil
}
