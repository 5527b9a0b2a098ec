package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseCargo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	content := `[package]
name = "my_app"
version = "1.4.2"
edition = "2021"

[dependencies]
serde = "1"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	name, version, err := ParseCargo(path)
	if err != nil {
		t.Fatalf("ParseCargo failed: %v", err)
	}
	if name != "my_app" {
		t.Errorf("name = %q, want my_app", name)
	}
	if version != "1.4.2" {
		t.Errorf("version = %q, want 1.4.2", version)
	}
}

func TestParseCargoMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	if err := os.WriteFile(path, []byte("[workspace]\nmembers = [\"a\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	name, version, err := ParseCargo(path)
	if err != nil {
		t.Fatalf("ParseCargo failed: %v", err)
	}
	if name != "" || version != "" {
		t.Errorf("expected empty fields, got %q %q", name, version)
	}
}

func TestParseCargoNotFound(t *testing.T) {
	_, _, err := ParseCargo(filepath.Join(t.TempDir(), "Cargo.toml"))
	if !errors.Is(err, ErrNoManifest) {
		t.Errorf("expected ErrNoManifest, got %v", err)
	}
}

func TestValidateVersion(t *testing.T) {
	for _, v := range []string{"1.0.0", "0.1", "65535.0.0", "7"} {
		if err := ValidateVersion(v); err != nil {
			t.Errorf("ValidateVersion(%q) = %v, want nil", v, err)
		}
	}
	for _, v := range []string{"", "1.0.0-beta", "65536.0", "a.b.c", "1..2"} {
		if err := ValidateVersion(v); err == nil {
			t.Errorf("ValidateVersion(%q) = nil, want error", v)
		}
	}
}
