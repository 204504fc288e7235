// Package output renders spell check reports.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

// Format selects a report renderer.
type Format string

const (
	// FormatText prints one line per offending notebook.
	FormatText Format = "text"
	// FormatJSON prints the report as JSON.
	FormatJSON Format = "json"
	// FormatTable prints a path/word table.
	FormatTable Format = "table"
	// FormatXLSX writes an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatTable, FormatXLSX}

// ParseFormat validates a format name. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (must be text, json, table, or xlsx)", s)
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool {
	return f == FormatXLSX
}

// Options configures rendering.
type Options struct {
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// Color highlights text output.
	Color bool
	// Suggestions includes correction candidates when the report has them.
	Suggestions bool
}

// Write renders the report to w. Text and table output are empty for a
// report without misspellings.
func Write(w io.Writer, r *models.Report, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return WriteText(w, r, opts)
	case FormatJSON:
		data, err := ToJSON(r, opts.Pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatTable:
		if r.Empty() {
			return nil
		}
		_, err := fmt.Fprintln(w, RenderTable(r, opts.Suggestions))
		return err
	case FormatXLSX:
		return WriteXLSX(w, r)
	default:
		return fmt.Errorf("invalid format: %s", opts.Format)
	}
}

// ShouldColorize reports whether w is a terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
