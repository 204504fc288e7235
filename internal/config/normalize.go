package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeWords()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Root = strings.TrimSpace(c.Root)
	if c.Root == "" {
		c.Root = defaultRoot
	}
	if c.Root, err = expandPath(c.Root); err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if c.IgnoreFile, err = expandPath(strings.TrimSpace(c.IgnoreFile)); err != nil {
		return fmt.Errorf("ignore_file: %w", err)
	}
	c.Dictionaries = trimAll(c.Dictionaries)
	for i, dict := range c.Dictionaries {
		if c.Dictionaries[i], err = expandPath(dict); err != nil {
			return fmt.Errorf("dictionaries[%d]: %w", i, err)
		}
	}
	if c.Output.Path, err = expandPath(strings.TrimSpace(c.Output.Path)); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeWords() {
	c.IgnoreWords = trimAll(c.IgnoreWords)
	c.Exclude = trimAll(c.Exclude)
	c.Extension = strings.TrimSpace(c.Extension)
	if c.Extension == "" {
		c.Extension = defaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// trimAll drops blank entries and surrounding whitespace.
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
