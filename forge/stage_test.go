package forge

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForgeMinimalProject(t *testing.T) {
	vars := minimalProject(t, "my_app", Amd64)

	var out bytes.Buffer
	p, err := New(vars, false, &out)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Forge(); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	root := vars.StagingRoot()
	wantFiles := []string{
		"DEBIAN/control",
		"usr/share/doc/my-app/changelog",
		"usr/share/doc/my-app/copyright",
		"usr/local/bin/my-app",
	}
	for _, f := range wantFiles {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("missing staged file %s: %v", f, err)
		}
	}

	// The staged binary keeps its executable mode.
	info, err := os.Stat(filepath.Join(root, "usr", "local", "bin", "my-app"))
	if err != nil {
		t.Fatalf("stat staged binary: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("staged binary is not executable: %v", info.Mode())
	}

	if !strings.Contains(out.String(), "Successfully imported 3 files, and project binary") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}

func TestForgeSubstitutesVariables(t *testing.T) {
	vars := minimalProject(t, "my_app", Arm64)

	p, err := New(vars, false, os.Stdout)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Forge(); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(vars.StagingRoot(), "DEBIAN", "control"))
	if err != nil {
		t.Fatalf("read staged control: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "Package: my-app\n") {
		t.Errorf("missing substituted package name:\n%s", got)
	}
	if !strings.Contains(got, "Architecture: arm64\n") {
		t.Errorf("missing substituted architecture:\n%s", got)
	}
}

func TestForgeAppliesDefines(t *testing.T) {
	vars := minimalProject(t, "my_app", Amd64)
	vars.Defines = map[string]string{"Maintainer": "Jane Doe <jane@example.com>"}
	write(t, filepath.Join(vars.ProjectDir, "debian", "control"),
		"Package: $LinuxBinaryName\nMaintainer: $Maintainer\n")

	p, err := New(vars, false, os.Stdout)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Forge(); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(vars.StagingRoot(), "DEBIAN", "control"))
	if err != nil {
		t.Fatalf("read staged control: %v", err)
	}
	if !strings.Contains(string(data), "Maintainer: Jane Doe <jane@example.com>\n") {
		t.Errorf("define not applied:\n%s", data)
	}
}

func TestForgeNormalizesLineEndings(t *testing.T) {
	vars := minimalProject(t, "my_app", Amd64)
	// CRLF endings and no final newline.
	write(t, filepath.Join(vars.ProjectDir, "debian", "copyright"),
		"Line one\r\nLine two")

	p, err := New(vars, false, os.Stdout)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Forge(); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(vars.StagingRoot(), "usr", "share", "doc", "my-app", "copyright"))
	if err != nil {
		t.Fatalf("read staged copyright: %v", err)
	}
	if got, want := string(data), "Line one\nLine two\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForgeCopiesIconsVerbatim(t *testing.T) {
	vars := minimalProject(t, "my_app", Amd64)
	// Binary-looking content with a $Version marker that must survive
	// untouched, and no trailing newline.
	icon := "\x89PNG\r\n$Version\x00"
	write(t, filepath.Join(vars.ProjectDir, "assets", "icon-256.png"), icon)

	p, err := New(vars, false, os.Stdout)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Forge(); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	staged := filepath.Join(vars.StagingRoot(),
		"usr", "share", "icons", "hicolor", "256x256", "apps", "my-app.png")
	data, err := os.ReadFile(staged)
	if err != nil {
		t.Fatalf("read staged icon: %v", err)
	}
	if string(data) != icon {
		t.Errorf("icon not copied byte-for-byte: %q", data)
	}
}

func TestForgeDesktopEntry(t *testing.T) {
	vars := minimalProject(t, "my_app", Amd64)
	write(t, filepath.Join(vars.ProjectDir, "assets", "my_app.desktop"),
		"[Desktop Entry]\nName=$BinaryName\nExec=$LinuxBinaryName\n")

	var out bytes.Buffer
	p, err := New(vars, false, &out)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Forge(); err != nil {
		t.Fatalf("Forge failed: %v", err)
	}

	staged := filepath.Join(vars.StagingRoot(), "usr", "share", "applications", "my-app.desktop")
	data, err := os.ReadFile(staged)
	if err != nil {
		t.Fatalf("read staged desktop entry: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "Name=my_app\n") || !strings.Contains(got, "Exec=my-app\n") {
		t.Errorf("unexpected desktop entry:\n%s", got)
	}
	if !strings.Contains(out.String(), "Successfully imported 4 files, and project binary") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}

func TestForgeIdempotentOutput(t *testing.T) {
	vars := minimalProject(t, "my_app", Amd64)

	run := func() string {
		p, err := New(vars, false, os.Stdout)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := p.Forge(); err != nil {
			t.Fatalf("Forge failed: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(vars.StagingRoot(), "DEBIAN", "control"))
		if err != nil {
			t.Fatalf("read staged control: %v", err)
		}
		return string(data)
	}

	first := run()
	// The second run's build scan resets build/tmp before restaging.
	second := run()
	if first != second {
		t.Errorf("repeated runs differ:\n%q\n%q", first, second)
	}
}
