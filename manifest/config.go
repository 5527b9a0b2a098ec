// Package manifest resolves build parameters from project files: the
// optional forge.yaml defaults file and the Cargo manifest at the
// project root. It fills in whatever the command line left unspecified;
// the forge core never reads these files itself.
package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config holds the optional per-project defaults read from a forge.yaml
// file. Command-line flags take precedence over every field.
type Config struct {
	// BinaryName is the default binary name.
	BinaryName string
	// Version is the default package version.
	Version string
	// Target is the default target architecture or triple.
	Target string
	// Defines are extra substitution variables applied to text
	// artifacts after the built-in ones; key K substitutes $K.
	Defines map[string]string
}

// Load reads and parses a forge.yaml configuration file. A missing file
// is not an error and yields an empty Config; a malformed one is fatal
// upstream.
func Load(path string) (*Config, error) {
	// Internal DTO for YAML deserialization
	type yamlConfig struct {
		BinaryName string            `yaml:"binary_name"`
		Version    string            `yaml:"version"`
		Target     string            `yaml:"target"`
		Defines    map[string]string `yaml:"defines"`
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &Config{
		BinaryName: dto.BinaryName,
		Version:    dto.Version,
		Target:     dto.Target,
		Defines:    dto.Defines,
	}, nil
}
