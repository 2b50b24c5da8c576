// Package config holds the run-time settings of curator.
//
// Settings come from command-line flags and a few environment variables;
// there is no configuration file.
package config

import (
	"fmt"
	"strings"

	"github.com/acolita/curator/internal/generator"
	"github.com/acolita/curator/internal/logging"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel = "CURATOR_LOG_LEVEL"
	EnvFormat   = "CURATOR_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	DefaultLength = 8
	DefaultCount  = 1
)

// Config represents a single curator invocation.
type Config struct {
	Length  int
	Count   int
	Classes []string // class names accepted by generator.ParseClass
	Format  string
	Logging LoggingConfig
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level    string // "debug", "info", "warn", "error"
	Sanitize bool   // redact sensitive attributes
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Length: DefaultLength,
		Count:  DefaultCount,
		Format: FormatText,
		Logging: LoggingConfig{
			Level:    "warn",
			Sanitize: true,
		},
	}
}

// ApplyEnv overrides settings from the environment. Empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}
}

// Validate checks the configuration and normalizes the format name.
func (c *Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("length must not be negative, got %d", c.Length)
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Format)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	_, err := c.ParsedClasses()
	return err
}

// ParsedClasses resolves Classes, dropping duplicates.
func (c *Config) ParsedClasses() ([]generator.Class, error) {
	seen := make(map[generator.Class]bool, len(c.Classes))
	classes := make([]generator.Class, 0, len(c.Classes))
	for _, name := range c.Classes {
		class, err := generator.ParseClass(name)
		if err != nil {
			return nil, err
		}
		if seen[class] {
			continue
		}
		seen[class] = true
		classes = append(classes, class)
	}
	return classes, nil
}

// EnableClass adds a class by name if it is not already present.
func (c *Config) EnableClass(name string) {
	for _, existing := range c.Classes {
		if existing == name {
			return
		}
	}
	c.Classes = append(c.Classes, name)
}
