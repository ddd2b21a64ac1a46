// Package config holds the initialization parameters for the prefstore
// server binary. It lives apart from the prefs facade so library consumers
// of a namespace-bound Store never link the HTTP stack.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prefstore/prefstore/api"
	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/engine"
)

// Config holds initialization parameters for all subsystems of the prefstore
// server. Each section delegates to that subsystem's config-driven
// constructor.
type Config struct {
	Backend  backend.Config `json:"backend"`
	Engine   engine.Config  `json:"engine"`
	API      api.Config     `json:"api"`
	Observer string         `json:"observer,omitempty"` // observability registry name
}

// Default returns a Config with sensible defaults for all subsystems.
func Default() Config {
	return Config{
		Backend:  backend.DefaultConfig(),
		Engine:   engine.DefaultConfig(),
		API:      api.DefaultConfig(),
		Observer: "noop",
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Backend.Merge(&source.Backend)
	c.Engine.Merge(&source.Engine)
	c.API.Merge(&source.API)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// Load reads a JSON config file, merges it with defaults, and returns the
// resulting Config.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
