// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConcurrency = 4

// Config is the root of the configuration file.
type Config struct {
	CacheDir    string  `yaml:"cache_dir,omitempty"`
	Concurrency int     `yaml:"concurrency,omitempty"`
	Layers      []Layer `yaml:"layers,omitempty"`
}

// Layer is a source ingested at startup.
type Layer struct {
	Name    string `yaml:"name,omitempty"`
	Path    string `yaml:"path"`
	Visible bool   `yaml:"visible,omitempty"`
}

// Load reads the YAML file at path. A missing file yields an empty config
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
}
