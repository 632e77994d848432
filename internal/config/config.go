// Package config loads the YAML run configuration shared by the subcommands.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration. Keys missing from a file keep their defaults.
type Config struct {
	Train    Train    `yaml:"train"`
	Tokenize Tokenize `yaml:"tokenize"`
	Decode   Decode   `yaml:"decode"`
	Evaluate Evaluate `yaml:"evaluate"`
}

type Train struct {
	Iterations int `yaml:"iterations"`
	// MaxPairs caps the number of corpus lines read; 0 reads everything.
	MaxPairs int `yaml:"max_pairs"`
}

type Tokenize struct {
	Lowercase bool `yaml:"lowercase"`
}

type Decode struct {
	FirstOccurrence bool `yaml:"first_occurrence"`
}

type Evaluate struct {
	// GoldFolder is prepended to relative gold file names.
	GoldFolder string `yaml:"gold_folder"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Train: Train{
			Iterations: 3,
			MaxPairs:   3000,
		},
		Tokenize: Tokenize{
			Lowercase: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Parse(data, c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML into c, rejecting unknown keys, and validates the result.
func Parse(data []byte, c *Config) error {
	if len(data) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Train.Iterations < 0 {
		return fmt.Errorf("train.iterations must be >= 0, got %d", c.Train.Iterations)
	}
	if c.Train.MaxPairs < 0 {
		return fmt.Errorf("train.max_pairs must be >= 0, got %d", c.Train.MaxPairs)
	}
	return nil
}
