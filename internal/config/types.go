package config

import "github.com/yassine-ta/credential-forge/internal/generator"

// Config represents the credential-forge configuration file structure
type Config struct {
	// Defaults contains default settings for generation runs
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`

	// Patterns holds custom credential patterns, merged over the built-ins
	Patterns map[string]generator.Pattern `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// Executors is the number of worker pools the scheduler owns
	Executors int `yaml:"executors,omitempty" json:"executors,omitempty"`

	// Workers is the worker count per pool (0 means split the available
	// hardware parallelism across the pools)
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`

	// Count is the number of credentials generated per requested type
	Count int `yaml:"count,omitempty" json:"count,omitempty"`

	// OutputFormat is the default output format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}
