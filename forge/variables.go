package forge

import (
	"path/filepath"
	"sort"
	"strings"
)

// Variables holds the resolved build parameters of a run. Constructed
// once from externally resolved inputs and immutable thereafter.
type Variables struct {
	// ProjectDir is the validated project root directory.
	ProjectDir string
	// BinaryName is the raw binary name as built by the compiler.
	BinaryName string
	// LinuxBinaryName is BinaryName with underscores replaced by
	// hyphens, as required for Debian package and file names.
	LinuxBinaryName string
	// Version is the package version string.
	Version string
	// Arch is the resolved target architecture.
	Arch Architecture
	// Defines are extra user-supplied substitution variables, applied
	// after the built-in ones. A key K substitutes the literal $K.
	Defines map[string]string
}

// NewVariables builds the run parameters, deriving the Linux-normalized
// binary name.
func NewVariables(projectDir, binaryName, version string, arch Architecture) Variables {
	return Variables{
		ProjectDir:      projectDir,
		BinaryName:      binaryName,
		LinuxBinaryName: strings.ReplaceAll(binaryName, "_", "-"),
		Version:         version,
		Arch:            arch,
	}
}

// BinaryPath returns the expected location of the built binary.
func (v Variables) BinaryPath() string {
	return filepath.Join(v.ProjectDir, filepath.FromSlash(v.Arch.BinPath()), v.BinaryName)
}

// StagingRoot returns the root of the staged package tree.
func (v Variables) StagingRoot() string {
	return filepath.Join(v.ProjectDir, "build", "tmp", "dist", "linux",
		v.LinuxBinaryName+"-"+v.Version)
}

// replacements returns the ordered substitution table applied to every
// line of a text artifact: the five built-ins first, then the user
// defines sorted by key.
func (v Variables) replacements() [][2]string {
	rs := [][2]string{
		{"$BinaryName", v.BinaryName},
		{"$LinuxBinaryName", v.LinuxBinaryName},
		{"$Version", v.Version},
		{"$Target", v.Arch.Target()},
		{"$Architecture", v.Arch.Short()},
	}
	keys := make([]string, 0, len(v.Defines))
	for k := range v.Defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rs = append(rs, [2]string{"$" + k, v.Defines[k]})
	}
	return rs
}

// substitute applies the replacement table to a single line.
func (v Variables) substitute(line string, rs [][2]string) string {
	for _, r := range rs {
		line = strings.ReplaceAll(line, r[0], r[1])
	}
	return line
}
