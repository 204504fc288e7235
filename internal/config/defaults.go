package config

const (
	defaultRoot           = "."
	defaultExtension      = ".ipynb"
	defaultMaxSuggestions = 3
	defaultOutputFormat   = "text"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// SearchPaths are the file names probed, in order, when no config path is given.
var SearchPaths = []string{"nbspell.toml", ".nbspell.toml", ".nbspell.yaml", ".nbspell.yml"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Root:              defaultRoot,
		IgnoreWords:       []string{},
		Extension:         defaultExtension,
		BuiltinDictionary: true,
		MaxSuggestions:    defaultMaxSuggestions,
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
