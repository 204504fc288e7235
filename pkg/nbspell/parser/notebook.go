// Package parser reads notebook documents into models.Notebook.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

// ErrInvalidNotebook indicates the input is not a readable notebook document.
var ErrInvalidNotebook = errors.New("invalid notebook")

// CurrentFormat is the nbformat major version notebooks are upgraded to.
const CurrentFormat = 4

// rawNotebook covers both the v4 layout (top-level cells) and the v3 layout
// (cells nested in worksheets).
type rawNotebook struct {
	Format      *int           `json:"nbformat"`
	FormatMinor int            `json:"nbformat_minor"`
	Cells       []rawCell      `json:"cells"`
	Worksheets  []rawWorksheet `json:"worksheets"`
}

type rawWorksheet struct {
	Cells []rawCell `json:"cells"`
}

type rawCell struct {
	CellType string    `json:"cell_type"`
	Source   multiline `json:"source"`
	// Input holds code cell text in v3 documents.
	Input multiline `json:"input"`
	// Level is the heading level of v3 heading cells.
	Level int `json:"level"`
}

// multiline is a notebook text field, stored either as a single string or as
// a list of lines that are concatenated verbatim.
type multiline string

func (m *multiline) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var lines []string
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		*m = multiline(strings.Join(lines, ""))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = multiline(s)
	return nil
}

// ParseFile reads the notebook stored at path.
func ParseFile(path string) (*models.Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nb, err := Parse(f)
	if err != nil {
		return nil, err
	}
	nb.Path = path
	return nb, nil
}

// Parse decodes a notebook document. Version 3 documents are upgraded to the
// version 4 cell list. Any decoding problem is reported as ErrInvalidNotebook.
func Parse(r io.Reader) (*models.Notebook, error) {
	var raw rawNotebook
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotebook, err)
	}
	// The document must be a single JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotebook, err)
	}
	if raw.Format == nil {
		return nil, fmt.Errorf("%w: missing nbformat", ErrInvalidNotebook)
	}

	nb := &models.Notebook{
		Format:      *raw.Format,
		FormatMinor: raw.FormatMinor,
	}

	switch *raw.Format {
	case CurrentFormat:
		if raw.Cells == nil {
			return nil, fmt.Errorf("%w: missing cells", ErrInvalidNotebook)
		}
		nb.Cells = make([]models.Cell, 0, len(raw.Cells))
		for _, c := range raw.Cells {
			nb.Cells = append(nb.Cells, models.Cell{
				Type:   models.CellType(c.CellType),
				Source: string(c.Source),
			})
		}
	case 3:
		nb.Cells = upgradeV3(raw.Worksheets)
	default:
		return nil, fmt.Errorf("%w: unsupported nbformat %d", ErrInvalidNotebook, *raw.Format)
	}

	return nb, nil
}
