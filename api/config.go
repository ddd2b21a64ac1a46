package api

// Config holds HTTP API initialization parameters.
type Config struct {
	Addr string `json:"addr,omitempty"` // listen address, e.g. ":6090"
}

// DefaultConfig returns the default API configuration.
func DefaultConfig() Config {
	return Config{Addr: ":6090"}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Addr != "" {
		c.Addr = source.Addr
	}
}
