package backend

import "fmt"

// Driver names accepted in Config.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
)

// Config holds backend initialization parameters.
type Config struct {
	Driver string `json:"driver,omitempty"` // "memory" or "file"
	Path   string `json:"path,omitempty"`   // file store root; required for "file"
}

// DefaultConfig returns the default backend configuration (in-memory).
func DefaultConfig() Config {
	return Config{Driver: DriverMemory}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Driver != "" {
		c.Driver = source.Driver
	}
	if source.Path != "" {
		c.Path = source.Path
	}
}

// New creates a Backend from configuration.
func New(cfg *Config) (Backend, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemStore(), nil
	case DriverFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("backend: file driver requires a path")
		}
		return NewFileStore(cfg.Path), nil
	default:
		return nil, fmt.Errorf("backend: unknown driver %q", cfg.Driver)
	}
}
