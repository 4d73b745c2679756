package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"stroke-compiler/internal/output"
)

// Defaults.
const (
	DefaultWorkers  = 1
	DefaultLogLevel = "info"
)

// Config describes one compile run.
type Config struct {
	// Input is the directory holding the drawing files.
	Input string `yaml:"input"`
	// Output is the JSON file the stroke table is written to.
	Output string `yaml:"output"`
	// Workers is the number of drawings parsed concurrently.
	Workers int `yaml:"workers,omitempty"`
	// CollectAll reports every failing drawing instead of stopping at the first.
	CollectAll bool `yaml:"collect_all,omitempty"`
	// ASCII escapes every non-ASCII character in the output.
	ASCII *bool `yaml:"ascii,omitempty"`
	// Indent is the number of spaces per JSON nesting level; 0 writes compact JSON.
	Indent *int `yaml:"indent,omitempty"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// IndentWidth returns the configured indent.
func (c *Config) IndentWidth() int {
	if c.Indent == nil {
		return output.DefaultFormat().Indent
	}

	return *c.Indent
}

// EscapeASCII reports whether the output escapes non-ASCII characters.
func (c *Config) EscapeASCII() bool {
	if c.ASCII == nil {
		return output.DefaultFormat().ASCII
	}

	return *c.ASCII
}

// Format returns the output format of the run.
func (c *Config) Format() output.Format {
	return output.Format{Indent: c.IndentWidth(), ASCII: c.EscapeASCII()}
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	var err error

	if c.Input == "" {
		err = multierr.Append(err, errors.New("input directory is required"))
	}

	if c.Output == "" {
		err = multierr.Append(err, errors.New("output file is required"))
	}

	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}

	if c.IndentWidth() < 0 {
		err = multierr.Append(err, fmt.Errorf("indent must not be negative, got %d", c.IndentWidth()))
	}

	if _, lerr := c.Level(); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log_level: %w", lerr))
	}

	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
