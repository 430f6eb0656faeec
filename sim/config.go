package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cachelab/policycache/eviction"
)

// Config carries the driver settings that would otherwise be prompted
// for interactively.
type Config struct {
	// Policy is the eviction policy name: LRU, MRU, LFU or FIFO.
	Policy eviction.PolicyType `yaml:"policy"`

	// Capacity is the maximum number of cache entries. Zero is a
	// valid degenerate cache; negative is rejected.
	Capacity int `yaml:"capacity"`

	Log struct {
		Level  string `yaml:"level"`  // debug, info, warn, error
		Format string `yaml:"format"` // text or json
	} `yaml:"log"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	var c Config
	c.Policy = eviction.LRU
	c.Capacity = 16
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// LoadConfig reads and validates a yaml config file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields the cache constructor would reject anyway,
// so a bad file fails at startup rather than mid-session.
func (c Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if _, err := eviction.NewPolicy[string](c.Policy); err != nil {
		return err
	}
	return nil
}
