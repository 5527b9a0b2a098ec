// Package forge assembles a Debian package staging tree for a compiled
// binary project.
//
// # Design Philosophy
//
// The package operates on the real filesystem and produces a staging
// directory in the canonical Debian source-package layout, ready for
// downstream tools (dpkg-deb, debuild) to consume. It never builds
// archives itself and never validates the contents of control files,
// only their presence, uniqueness, and placement.
//
// # Pipeline
//
// Discovery and staging are split in two:
//   - New scans the project tree, classifying packaging artifacts
//     (control metadata, maintainer scripts, icons, desktop entries)
//     scattered across the assets/, build/debian/, and debian/
//     subdirectories and the project root, and validates the result.
//   - Forge materializes the classified set under
//     <project>/build/tmp/dist/linux/<name>-<version>/, byte-copying
//     binary artifacts and applying variable substitution to text ones.
//
// All errors propagate to the caller; the package never terminates the
// process.
package forge
