package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerize.yaml configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig controls statement discovery when no explicit paths are given.
type InputConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"` // glob matched against base names
}

// OutputConfig controls where and how ledger workbooks are written.
type OutputConfig struct {
	Dir          string             `yaml:"dir"`
	ColumnWidths map[string]float64 `yaml:"column_widths,omitempty"`
}

// Load reads a ledgerize.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     "statements",
			Pattern: "*.xlsx",
		},
		Output: OutputConfig{
			Dir: "ledger",
			ColumnWidths: map[string]float64{
				"Date":      12,
				"Narration": 45,
				"MOP":       18,
				"Amt (Dr)":  14,
				"Amt (Cr)":  14,
				"Value Dt":  12,
			},
		},
	}
}
