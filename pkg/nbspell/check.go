package nbspell

import (
	"errors"
	"log/slog"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
	"github.com/ukaji3/nbspell-go/pkg/nbspell/normalize"
	"github.com/ukaji3/nbspell-go/pkg/nbspell/parser"
	"github.com/ukaji3/nbspell-go/pkg/nbspell/spelling"
)

// Checker spell checks notebooks against one spelling model. The model is
// built once, seeded with the ignore list, and never changes afterwards.
type Checker struct {
	opts   Options
	model  *spelling.Model
	logger *slog.Logger
}

// New builds a Checker, loading the configured dictionaries and ignore words.
func New(opts Options) (*Checker, error) {
	model := spelling.New(spelling.Options{CaseSensitive: opts.CaseSensitive})
	if opts.ShouldLoadBuiltin() {
		if err := model.LoadBuiltin(); err != nil {
			return nil, NewCheckError("builtin", "dictionary", err)
		}
	}
	for _, path := range opts.Dictionaries {
		if err := model.LoadFile(path, spelling.FormatAuto); err != nil {
			return nil, NewCheckError(path, "dictionary", err)
		}
	}
	model.Load(opts.IgnoreWords...)

	logger := opts.logger()
	logger.Debug("spelling model ready",
		slog.Int("words", model.Len()),
		slog.Int("ignore_words", len(opts.IgnoreWords)),
		slog.Int("dictionaries", len(opts.Dictionaries)),
	)

	return &Checker{opts: opts, model: model, logger: logger}, nil
}

// Model exposes the spelling model used by the checker.
func (c *Checker) Model() *spelling.Model {
	return c.model
}

// CheckNotebook checks the markdown cells of the notebook at path. The report
// lists path only when at least one unknown word was found. Read and parse
// failures are returned as *CheckError.
func (c *Checker) CheckNotebook(path string) (*models.Report, error) {
	nb, err := parser.ParseFile(path)
	if err != nil {
		stage := "read"
		if errors.Is(err, parser.ErrInvalidNotebook) {
			stage = "parse"
		}
		return nil, NewCheckError(path, stage, err)
	}

	report := models.NewReport()
	report.NotebooksChecked = 1
	for _, cell := range nb.MarkdownCells() {
		unknown := c.model.Unknown(c.words(cell.Source))
		report.Add(path, unknown...)
	}

	if c.opts.Suggest {
		for _, word := range report.Words(path) {
			report.Suggest(word, c.model.Candidates(word, c.opts.SuggestionLimit()))
		}
	}

	c.logger.Debug("notebook checked",
		slog.String("path", path),
		slog.Int("cells", len(nb.Cells)),
		slog.Int("unknown", len(report.Misspelled[path])),
	)
	return report, nil
}

// words extracts the tokens of one markdown cell.
func (c *Checker) words(source string) []string {
	if c.opts.MarkdownAware {
		source = normalize.MarkdownText(source)
	}
	return normalize.Words(source)
}

// CheckNotebook checks a single notebook with a freshly built Checker.
func CheckNotebook(path string, opts Options) (*models.Report, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.CheckNotebook(path)
}
