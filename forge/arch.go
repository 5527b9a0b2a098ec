package forge

import (
	"fmt"
	"strings"
)

// Architecture identifies a supported build target. Each variant carries
// a compile-time-fixed compiler target triple, Debian architecture token,
// and binary output subpath; none of them is ever computed.
type Architecture int

const (
	// Amd64 is the 64-bit x86 target. It is the default when the user
	// specifies no target at all.
	Amd64 Architecture = iota
	// Arm64 is the 64-bit ARM target.
	Arm64
)

// ParseArchitecture resolves a free-form target string to one of the
// fixed Architecture variants. Matching is case-insensitive and accepts
// both full target triples and common short aliases. An unrecognized
// string is an error: this is boundary validation, not a recoverable
// condition.
func ParseArchitecture(s string) (Architecture, error) {
	switch strings.ToLower(s) {
	case "x86_64-unknown-linux-gnu", "amd", "amd64", "x86", "x86_64":
		return Amd64, nil
	case "aarch64-unknown-linux-gnu", "arm", "arm64", "aarch64":
		return Arm64, nil
	}
	return 0, fmt.Errorf("invalid target/architecture: %s", s)
}

// Target returns the compiler target triple used to locate the built binary.
func (a Architecture) Target() string {
	switch a {
	case Arm64:
		return "aarch64-unknown-linux-gnu"
	default:
		return "x86_64-unknown-linux-gnu"
	}
}

// Short returns the Debian architecture token used in file templating.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#s-f-architecture
func (a Architecture) Short() string {
	switch a {
	case Arm64:
		return "arm64"
	default:
		return "amd64"
	}
}

// BinPath returns the release-build output subpath, relative to the
// project root, where the compiled binary is expected.
func (a Architecture) BinPath() string {
	return "target/" + a.Target() + "/release"
}

// String returns the Debian architecture token.
func (a Architecture) String() string { return a.Short() }
