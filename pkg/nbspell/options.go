// Package nbspell spell checks the markdown cells of Jupyter notebooks.
package nbspell

import (
	"log/slog"
	"strings"
)

// DefaultExtension is the file suffix that marks a notebook.
const DefaultExtension = ".ipynb"

// DefaultMaxSuggestions bounds the corrections listed per unknown word.
const DefaultMaxSuggestions = 3

// Options configures checking behavior.
type Options struct {
	// Root is the directory (or single notebook) to scan.
	Root string
	// IgnoreWords are treated as correctly spelled.
	IgnoreWords []string
	// Extension selects notebook files by name suffix. Empty means DefaultExtension.
	Extension string
	// Exclude lists glob patterns for files and directories to skip. A
	// pattern matches either the base name or the slash-separated path
	// relative to Root.
	Exclude []string
	// Dictionaries are extra dictionary files loaded into the spelling model.
	Dictionaries []string
	// BuiltinDictionary specifies whether the embedded English dictionary is loaded.
	// If nil, defaults to true.
	BuiltinDictionary *bool
	// CaseSensitive disables case folding in dictionary lookups.
	CaseSensitive bool
	// MarkdownAware checks only the prose of markdown cells, skipping code
	// spans, code blocks, link targets and HTML markup.
	MarkdownAware bool
	// Suggest attaches correction candidates to the report.
	Suggest bool
	// MaxSuggestions bounds suggestions per word. Zero or less means DefaultMaxSuggestions.
	MaxSuggestions int
	// Logger receives progress messages. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default checking options.
func DefaultOptions() Options {
	return Options{
		Root:      ".",
		Extension: DefaultExtension,
	}
}

// ShouldLoadBuiltin returns whether to load the embedded English dictionary.
func (o Options) ShouldLoadBuiltin() bool {
	if o.BuiltinDictionary != nil {
		return *o.BuiltinDictionary
	}
	return true
}

// NotebookExtension returns the effective notebook suffix.
func (o Options) NotebookExtension() string {
	ext := strings.TrimSpace(o.Extension)
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// SuggestionLimit returns the effective number of suggestions per word.
func (o Options) SuggestionLimit() int {
	if o.MaxSuggestions <= 0 {
		return DefaultMaxSuggestions
	}
	return o.MaxSuggestions
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
