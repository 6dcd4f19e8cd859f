package lakedocscfg

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the public Fabric control-plane endpoint.
	DefaultBaseURL = "https://api.fabric.microsoft.com/v1"
	// DefaultMaxResults is the page-size hint for listing calls.
	DefaultMaxResults = 100
	// DefaultMaxPages bounds continuation-token pagination.
	DefaultMaxPages = 1000
)

// Default returns a Root populated with defaults and env overrides only.
func Default() *Root {
	cfg := &Root{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// Load reads a YAML file from the given path and returns a deserialized
// Root with defaults and env overrides applied. Env beats file.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, nil
}

func (c *Root) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.MaxResults <= 0 {
		c.API.MaxResults = DefaultMaxResults
	}
	if c.API.MaxPages <= 0 {
		c.API.MaxPages = DefaultMaxPages
	}
}

func (c *Root) applyEnv() {
	if v := os.Getenv("LAKEDOCS_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("LAKEDOCS_API_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.API.MaxResults = n
		}
	}
	if v := os.Getenv("LAKEDOCS_API_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.API.MaxPages = n
		}
	}
	if v := os.Getenv("LAKEDOCS_AUTH_METHOD"); v != "" {
		c.Auth.Method = v
	}
}
