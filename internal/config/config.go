// Package config loads the server configuration. Values are layered:
// defaults, then the YAML file, then the environment. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/erazemk/blagajna/internal/catalog"
)

// Config is the full server configuration.
type Config struct {
	Addr           string         `yaml:"addr"`
	DB             string         `yaml:"db"`
	Log            string         `yaml:"log"`
	AdminEmail     string         `yaml:"admin_email"`
	Backend        Backend        `yaml:"backend"`
	MutationPolicy catalog.Policy `yaml:"mutation_policy"`
}

// Backend configures the upstream REST API.
type Backend struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:       ":3000",
		DB:         "blagajna.sqlite3",
		AdminEmail: "admin@pos.local",
		Backend: Backend{
			URL:     "http://localhost:8080/api",
			Timeout: 10 * time.Second,
		},
		MutationPolicy: catalog.Optimistic,
	}
}

// Load builds a configuration from the defaults, the optional YAML file at
// path and the process environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.LoadEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv overrides values from BLAGAJNA_* environment variables.
func (c *Config) LoadEnv(getenv func(string) string) error {
	if v := getenv("BLAGAJNA_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("BLAGAJNA_DB"); v != "" {
		c.DB = v
	}
	if v := getenv("BLAGAJNA_LOG"); v != "" {
		c.Log = v
	}
	if v := getenv("BLAGAJNA_API_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := getenv("BLAGAJNA_API_TIMEOUT"); v != "" {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("BLAGAJNA_API_TIMEOUT: %w", err)
		}
		c.Backend.Timeout = d
	}
	if v := getenv("BLAGAJNA_MUTATION_POLICY"); v != "" {
		c.MutationPolicy = catalog.Policy(v)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.DB == "" {
		return errors.New("db must not be empty")
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("backend.url %q is not an http(s) URL", c.Backend.URL)
	}
	if c.Backend.Timeout < 0 {
		return errors.New("backend.timeout must not be negative")
	}
	if _, err := catalog.ParsePolicy(string(c.MutationPolicy)); err != nil {
		return fmt.Errorf("mutation_policy: %w", err)
	}
	return nil
}
