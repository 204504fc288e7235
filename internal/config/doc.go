// Package config loads, normalizes, and validates nbspell configuration.
//
// Settings come from a TOML or YAML file found in the working directory (or
// named explicitly), layered over repository defaults. Command-line flags are
// applied on top by the CLI. Always obtain settings through this package so
// callers receive trimmed values, expanded home paths, and clear validation
// errors.
package config
