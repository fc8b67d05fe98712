package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Practice.Words != nil {
		t.Fatalf("expected unset fields for missing config")
	}
}

func TestLoadParsesPractice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "[practice]\nwords = 40\npolicy = \"lenient\"\ncaps = 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Practice.Words == nil || *cfg.Practice.Words != 40 {
		t.Fatalf("expected words 40, got %+v", cfg.Practice.Words)
	}
	if cfg.Practice.Policy == nil || *cfg.Practice.Policy != "lenient" {
		t.Fatalf("expected lenient policy, got %+v", cfg.Practice.Policy)
	}
	if cfg.Practice.CapsPct == nil || *cfg.Practice.CapsPct != 0.25 {
		t.Fatalf("expected caps 0.25, got %+v", cfg.Practice.CapsPct)
	}
	if cfg.Practice.Lang != nil {
		t.Fatalf("expected lang unset")
	}
}

func TestLoadEmptyPathFails(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
