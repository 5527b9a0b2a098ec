package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/etnz/deb-forge/forge"
	"github.com/etnz/deb-forge/manifest"
)

// projectEnvVar names the environment variable that overrides the
// working directory as project root.
const projectEnvVar = "PROJ_DIR"

func main() {
	// Optional .env next to the invocation, a convenience for PROJ_DIR.
	godotenv.Load()

	fs := flag.NewFlagSet("deb-forge", flag.ExitOnError)
	var (
		binaryName string
		version    string
		target     string
		dryRun     bool
		confPath   string
	)
	fs.StringVar(&binaryName, "b", "", "binary name (default: parsed from Cargo.toml)")
	fs.StringVar(&binaryName, "binary-name", "", "binary name (default: parsed from Cargo.toml)")
	fs.StringVar(&version, "v", "", "package version (default: parsed from Cargo.toml)")
	fs.StringVar(&version, "version", "", "package version (default: parsed from Cargo.toml)")
	fs.StringVar(&target, "t", "", "target architecture (default: x86_64-unknown-linux-gnu)")
	fs.StringVar(&target, "target", "", "target architecture (default: x86_64-unknown-linux-gnu)")
	fs.BoolVar(&dryRun, "d", false, "validate and list found deb files without writing output")
	fs.BoolVar(&dryRun, "dry-run", false, "validate and list found deb files without writing output")
	fs.StringVar(&confPath, "config", "forge.yaml", "path to the project defaults file, relative to the project directory")
	fs.Parse(os.Args[1:])

	projectDir, err := locateProjectDir()
	if err != nil {
		fatal(err)
	}

	if !filepath.IsAbs(confPath) {
		confPath = filepath.Join(projectDir, confPath)
	}
	cfg, err := manifest.Load(confPath)
	if err != nil {
		fatal(err)
	}

	// Resolution order: flags, then forge.yaml, then Cargo.toml.
	if binaryName == "" {
		binaryName = cfg.BinaryName
	}
	if version == "" {
		version = cfg.Version
	}
	if target == "" {
		target = cfg.Target
	}

	if binaryName == "" || version == "" {
		name, ver, err := manifest.ParseCargo(filepath.Join(projectDir, "Cargo.toml"))
		if err != nil {
			fatal(err)
		}
		if binaryName == "" {
			binaryName = name
		}
		if version == "" {
			version = ver
		}
		if binaryName == "" || version == "" {
			fatal(errors.New("failed to parse Cargo.toml"))
		}
	}
	if err := manifest.ValidateVersion(version); err != nil {
		fatal(err)
	}

	arch := forge.Amd64
	if target != "" {
		if arch, err = forge.ParseArchitecture(target); err != nil {
			fatal(err)
		}
	}

	vars := forge.NewVariables(projectDir, binaryName, version, arch)
	vars.Defines = cfg.Defines

	project, err := forge.New(vars, dryRun, os.Stdout)
	if err != nil {
		fatal(err)
	}

	if dryRun {
		fmt.Println("Valid project file structure")
		return
	}

	if err := project.Forge(); err != nil {
		fatal(err)
	}
}

// locateProjectDir resolves the project root: PROJ_DIR if set, the
// working directory otherwise. Running from inside build/ resolves to
// its parent so the tool works from the build tree it manages.
func locateProjectDir() (string, error) {
	dir := os.Getenv(projectEnvVar)
	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return "", err
		}
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s is not a valid project directory", dir)
	}
	if filepath.Base(dir) == "build" {
		return filepath.Dir(dir), nil
	}
	return dir, nil
}

// fatal reports an error on stderr and terminates. Process exits live
// here and nowhere else.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "deb-forge: %v\n", err)
	os.Exit(1)
}
