package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPolicyAllows(t *testing.T) {
	pol := Default()

	tests := []struct {
		name     string
		category string
		expected bool
	}{
		{name: "empty category always allowed", category: "", expected: true},
		{name: "included category allowed", category: "bug", expected: true},
		{name: "excluded category blocked", category: "style", expected: false},
		{name: "excluded nit blocked", category: "nit", expected: false},
		{name: "case insensitive", category: "STYLE", expected: false},
		{name: "unknown category allowed", category: "something-else", expected: true},
		{name: "whitespace trimmed", category: "  nit  ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pol.Allows(tt.category); got != tt.expected {
				t.Errorf("Allows(%q) = %v, want %v", tt.category, got, tt.expected)
			}
		})
	}
}

func TestZeroPolicyAllowsEverything(t *testing.T) {
	var pol Policy
	for _, category := range []string{"", "style", "nit", "bug"} {
		if !pol.Allows(category) {
			t.Errorf("zero policy should allow %q", category)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := []byte("categories:\n  include: [bug, security]\n  exclude: [style]\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	pol, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(pol.Include) != 2 || pol.Include[0] != "bug" {
		t.Errorf("unexpected include list: %v", pol.Include)
	}
	if pol.Allows("style") {
		t.Error("loaded policy should block style")
	}
	if !pol.Allows("bug") {
		t.Error("loaded policy should allow bug")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	pol, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") unexpected error: %v", err)
	}
	if !pol.Allows("style") {
		t.Error("empty path should yield an allow-all policy")
	}
}
