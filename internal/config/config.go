package config

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/nbspell-go/pkg/nbspell"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrConfigNotFound indicates an explicitly requested config file is missing.
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigExists indicates CreateSample refused to replace a file.
var ErrConfigExists = errors.New("config file already exists")

// Output contains report rendering settings.
type Output struct {
	Format string `toml:"format" yaml:"format"`
	Path   string `toml:"path" yaml:"path"`
	Pretty bool   `toml:"pretty" yaml:"pretty"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" yaml:"format"`
	Level  string `toml:"level" yaml:"level"`
}

// Config encapsulates all configuration values for nbspell.
//
// Root and IgnoreWords are the two options every check needs; the rest tune
// notebook discovery, the spelling model, and report output.
type Config struct {
	// Root is the directory to scan.
	Root string `toml:"root" yaml:"root"`
	// IgnoreWords are pre-approved tokens.
	IgnoreWords []string `toml:"ignore_words" yaml:"ignore_words"`
	// IgnoreFile names a word list merged into IgnoreWords.
	IgnoreFile string `toml:"ignore_file" yaml:"ignore_file"`
	// Extension selects notebook files.
	Extension string `toml:"extension" yaml:"extension"`
	// Exclude lists glob patterns of skipped files and directories.
	Exclude []string `toml:"exclude" yaml:"exclude"`
	// Dictionaries are extra word lists, hunspell .dic files, or word
	// frequency JSON files (optionally gzipped).
	Dictionaries []string `toml:"dictionaries" yaml:"dictionaries"`
	// BuiltinDictionary loads the embedded English dictionary.
	BuiltinDictionary bool `toml:"builtin_dictionary" yaml:"builtin_dictionary"`
	CaseSensitive     bool `toml:"case_sensitive" yaml:"case_sensitive"`
	MarkdownAware     bool `toml:"markdown_aware" yaml:"markdown_aware"`
	Suggest           bool `toml:"suggest" yaml:"suggest"`
	MaxSuggestions    int  `toml:"max_suggestions" yaml:"max_suggestions"`

	Output  Output  `toml:"output" yaml:"output"`
	Logging Logging `toml:"logging" yaml:"logging"`
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the file it was read from, and whether such a file existed. With an
// empty path the SearchPaths are probed in the working directory and
// defaults are used when none exists.
func Load(path string) (*Config, string, bool, error) {
	cfg, resolvedPath, exists, err := Read(path)
	if err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return cfg, resolvedPath, exists, nil
}

// Read is Load without validation. Use it when more overrides are applied
// before the config is used; call Finalize once they are in place.
func Read(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Finalize normalizes and validates the configuration. Call it again after
// changing fields, e.g. when applying command-line overrides.
func (c *Config) Finalize() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse config: %w", err)
		}
	default:
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("%w: %s", ErrConfigNotFound, expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	for _, candidate := range SearchPaths {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// IgnoreList returns IgnoreWords merged with the words of IgnoreFile.
// Duplicates are dropped; order follows first appearance.
func (c *Config) IgnoreList() ([]string, error) {
	words := append([]string(nil), c.IgnoreWords...)
	if c.IgnoreFile != "" {
		fromFile, err := readWordList(c.IgnoreFile)
		if err != nil {
			return nil, fmt.Errorf("ignore_file: %w", err)
		}
		words = append(words, fromFile...)
	}

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}

func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	return words, scanner.Err()
}

// CheckOptions converts the configuration into checker options.
func (c *Config) CheckOptions() (nbspell.Options, error) {
	ignore, err := c.IgnoreList()
	if err != nil {
		return nbspell.Options{}, err
	}
	builtin := c.BuiltinDictionary
	return nbspell.Options{
		Root:              c.Root,
		IgnoreWords:       ignore,
		Extension:         c.Extension,
		Exclude:           c.Exclude,
		Dictionaries:      c.Dictionaries,
		BuiltinDictionary: &builtin,
		CaseSensitive:     c.CaseSensitive,
		MarkdownAware:     c.MarkdownAware,
		Suggest:           c.Suggest,
		MaxSuggestions:    c.MaxSuggestions,
	}, nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" || !strings.HasPrefix(pathValue, "~") {
		return pathValue, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if pathValue == "~" {
		return home, nil
	}
	if pathValue[1] == '/' || pathValue[1] == '\\' {
		return filepath.Join(home, pathValue[2:]), nil
	}
	return pathValue, nil
}

// ExpandPath exposes the home directory expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
// Existing files are left untouched unless overwrite is set.
func CreateSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
