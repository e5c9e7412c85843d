package grpy

import "fmt"

// Config is the configuration for the Manager.
type Config struct {
	// DefaultPolicy is the policy code applied when a grouping has no
	// policy code set. Defaults to "RD".
	DefaultPolicy string `yaml:"defaultPolicy"`
}

// SetDefaults fills unset fields with their default values.
func (c *Config) SetDefaults() {
	if c.DefaultPolicy == "" {
		c.DefaultPolicy = "RD"
	}
}

// Validate checks the configuration.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped) if a field is invalid, nil otherwise
func (c *Config) Validate() error {
	if c.DefaultPolicy == "" {
		return fmt.Errorf("%w: default policy must not be empty", ErrInvalidConfig)
	}

	return nil
}
