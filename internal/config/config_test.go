package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("default format = %q, want json", cfg.Output.Format)
	}
	if !cfg.Submit.Confirm {
		t.Error("default submit.confirm should be true")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("output:\n  format: text\nsubmit:\n  confirm: false\npolicy:\n  path: /tmp/policy.yaml\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("format = %q, want text", cfg.Output.Format)
	}
	if cfg.Submit.Confirm {
		t.Error("submit.confirm should be false")
	}
	if cfg.Policy.Path != "/tmp/policy.yaml" {
		t.Errorf("policy.path = %q", cfg.Policy.Path)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed config should fail")
	}
}
