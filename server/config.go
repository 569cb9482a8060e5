package server

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	defaultAddr     = ":8080"
	defaultCapacity = 1024
)

// Config holds initialization parameters for the HTTP service.
type Config struct {
	Addr       string `json:"addr,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
	ScratchDir string `json:"scratch_dir,omitempty"` // parent for spill files; empty means the system temp dir
	Observer   string `json:"observer,omitempty"`    // observability registry name
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     defaultAddr,
		Capacity: defaultCapacity,
		Observer: "slog",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Addr != "" {
		c.Addr = source.Addr
	}
	if source.Capacity > 0 {
		c.Capacity = source.Capacity
	}
	if source.ScratchDir != "" {
		c.ScratchDir = source.ScratchDir
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and
// returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

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
