package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all gridkit configuration
type Config struct {
	Triangle TriangleConfig `yaml:"triangle"`
	Path     PathConfig     `yaml:"path"`
	Query    QueryConfig    `yaml:"query"`
	Output   OutputConfig   `yaml:"output"`
}

// TriangleConfig holds triangle-lattice settings
type TriangleConfig struct {
	SmoothStep int `yaml:"smooth_step"` // chord length for smooth lines
}

// PathConfig holds path search settings
type PathConfig struct {
	MaxRadius int `yaml:"max_radius"` // search disc radius when a query gives none
}

// QueryConfig holds limits on query payloads
type QueryConfig struct {
	MaxRadius int `yaml:"max_radius"` // largest radius hex.range, hex.ring and tri.range accept
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Indent     int  `yaml:"indent"`
	LogQueries bool `yaml:"log_queries"`
}

// Default returns the configuration used when no file sets a value
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Triangle.SmoothStep == 0 {
		cfg.Triangle.SmoothStep = 8
	}
	if cfg.Path.MaxRadius == 0 {
		cfg.Path.MaxRadius = 32
	}
	if cfg.Query.MaxRadius == 0 {
		cfg.Query.MaxRadius = 256
	}
	if cfg.Output.Indent == 0 {
		cfg.Output.Indent = 2
	}
}
