package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erazemk/blagajna/internal/catalog"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Backend.URL != "http://localhost:8080/api" {
		t.Errorf("unexpected backend url %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Backend.Timeout)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blagajna.yaml")
	data := `
addr: ":4000"
backend:
  url: "http://backend.internal/api"
  timeout: 3s
mutation_policy: strict
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BLAGAJNA_API_URL", "https://pos.example.com/api")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":4000" {
		t.Errorf("expected addr from file, got %q", cfg.Addr)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.Backend.Timeout)
	}
	if cfg.Backend.URL != "https://pos.example.com/api" {
		t.Errorf("expected env to override file, got %q", cfg.Backend.URL)
	}
	if cfg.MutationPolicy != catalog.Strict {
		t.Errorf("expected strict, got %q", cfg.MutationPolicy)
	}
	if cfg.DB != "blagajna.sqlite3" {
		t.Errorf("expected default db, got %q", cfg.DB)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnvTimeout(t *testing.T) {
	env := map[string]string{"BLAGAJNA_API_TIMEOUT": "250ms"}
	cfg := Default()
	if err := cfg.LoadEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Backend.Timeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Backend.Timeout)
	}

	env["BLAGAJNA_API_TIMEOUT"] = "soon"
	if err := cfg.LoadEnv(func(k string) string { return env[k] }); err == nil {
		t.Error("expected error for bad duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"relative url", func(c *Config) { c.Backend.URL = "/api" }},
		{"ftp url", func(c *Config) { c.Backend.URL = "ftp://host/api" }},
		{"negative timeout", func(c *Config) { c.Backend.Timeout = -time.Second }},
		{"unknown policy", func(c *Config) { c.MutationPolicy = "pessimistic" }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
