package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrNoManifest is returned by ParseCargo when the manifest file does
// not exist at all, so callers can distinguish "missing" from
// "unparseable".
var ErrNoManifest = errors.New("could not find Cargo.toml")

// ParseCargo extracts the package name and version from a Cargo
// manifest. It deliberately performs line extraction, not TOML parsing:
// it takes the first `name = "..."` and `version = "..."` lines it
// encounters, which in a conventional manifest are the [package] fields.
// A field that never appears is returned empty; the caller decides
// whether that is fatal.
func ParseCargo(path string) (name, version string, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", ErrNoManifest
		}
		return "", "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if name == "" {
			if rest, ok := strings.CutPrefix(line, `name = "`); ok {
				if v, ok := strings.CutSuffix(rest, `"`); ok {
					name = v
					continue
				}
			}
		}
		if version == "" {
			if rest, ok := strings.CutPrefix(line, `version = "`); ok {
				if v, ok := strings.CutSuffix(rest, `"`); ok {
					version = v
				}
			}
		}
		if name != "" && version != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return name, version, nil
}

// ValidateVersion checks that every dot-separated component of v parses
// as an unsigned 16-bit integer.
func ValidateVersion(v string) error {
	for _, part := range strings.Split(v, ".") {
		if _, err := strconv.ParseUint(part, 10, 16); err != nil {
			return fmt.Errorf("invalid version: %q", v)
		}
	}
	return nil
}
