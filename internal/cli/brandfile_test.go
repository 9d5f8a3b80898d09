package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadIdentityYAML(t *testing.T) {
	path := writeTempFile(t, "brand.yaml", `
name: Acme
tagline: Ship faster
tone: professional
colors:
  primary: "#2d5bff"
  secondary: "#00c2a8"
`)

	id, err := loadIdentity(path)
	if err != nil {
		t.Fatalf("loadIdentity() error: %v", err)
	}
	if id.Name != "Acme" {
		t.Errorf("Name = %q, want %q", id.Name, "Acme")
	}
	if id.Colors.Primary != "#2d5bff" {
		t.Errorf("Primary = %q, want %q", id.Colors.Primary, "#2d5bff")
	}
}

func TestLoadIdentityJSON(t *testing.T) {
	path := writeTempFile(t, "brand.json",
		`{"name": "Acme", "colors": {"primary": "#112233"}}`)

	id, err := loadIdentity(path)
	if err != nil {
		t.Fatalf("loadIdentity() error: %v", err)
	}
	if id.Colors.Primary != "#112233" {
		t.Errorf("Primary = %q, want %q", id.Colors.Primary, "#112233")
	}
}

func TestLoadIdentityAppliesAdvisoryOverrides(t *testing.T) {
	path := writeTempFile(t, "brand.yaml", `
name: Acme
colors:
  primary: "#2d5bff"
advisory:
  layout: B
  colors:
    primary: "#aa00aa"
`)

	id, err := loadIdentity(path)
	if err != nil {
		t.Fatalf("loadIdentity() error: %v", err)
	}
	if id.Colors.Primary != "#aa00aa" {
		t.Errorf("advisory primary not applied: Primary = %q", id.Colors.Primary)
	}
}

func TestLoadIdentityRejectsMissingName(t *testing.T) {
	path := writeTempFile(t, "brand.yaml", `tagline: no name here`)

	if _, err := loadIdentity(path); err == nil {
		t.Error("expected validation error for missing name, got nil")
	}
}

func TestLoadIdentityRejectsBadHexColor(t *testing.T) {
	path := writeTempFile(t, "brand.yaml", `
name: Acme
colors:
  primary: "blueish"
`)

	if _, err := loadIdentity(path); err == nil {
		t.Error("expected validation error for malformed colour, got nil")
	}
}

func TestLoadIdentityMissingFile(t *testing.T) {
	if _, err := loadIdentity(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadOutline(t *testing.T) {
	path := writeTempFile(t, "outline.yaml", `
headline: Launch day
sections:
  - title: Features
    bullets: [fast, simple]
cta: Try it
`)

	outline, err := loadOutline(path)
	if err != nil {
		t.Fatalf("loadOutline() error: %v", err)
	}
	if outline.Headline != "Launch day" {
		t.Errorf("Headline = %q", outline.Headline)
	}
	if len(outline.Sections) != 1 || len(outline.Sections[0].Bullets) != 2 {
		t.Errorf("unexpected sections: %+v", outline.Sections)
	}
}
