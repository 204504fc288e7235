package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/output"
)

// Validate ensures the configuration is usable. All problems are reported
// together.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateExclude(),
		c.validateSuggestions(),
		c.validateOutput(),
		c.validateLogging(),
	)
}

func (c *Config) validateExclude() error {
	for _, pattern := range c.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateSuggestions() error {
	if c.MaxSuggestions < 0 {
		return errors.New("max_suggestions must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if format.Binary() && c.Output.Path == "" {
		return fmt.Errorf("output.path is required for %s output", format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
