package engine

// Config holds engine initialization parameters.
type Config struct {
	ClearWidth int `json:"clear_concurrency,omitempty"` // max in-flight deletes during Clear
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{ClearWidth: defaultClearWidth}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.ClearWidth > 0 {
		c.ClearWidth = source.ClearWidth
	}
}
