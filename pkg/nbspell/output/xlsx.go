package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

const (
	// MisspellingsSheet lists one (notebook, word) pair per row.
	MisspellingsSheet = "Misspellings"
	// SummarySheet holds run metadata.
	SummarySheet = "Summary"
)

// ToXLSX builds a workbook with a Misspellings sheet (notebook, word,
// suggestions) and a Summary sheet.
func ToXLSX(r *models.Report) (*excelize.File, error) {
	if r == nil {
		r = models.NewReport()
	}
	f := excelize.NewFile()

	// NewFile starts with "Sheet1".
	if err := f.SetSheetName("Sheet1", MisspellingsSheet); err != nil {
		f.Close()
		return nil, err
	}

	header := []interface{}{"Notebook", "Word", "Suggestions"}
	if err := f.SetSheetRow(MisspellingsSheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	row := 2
	for _, path := range r.Paths() {
		for _, word := range r.Words(path) {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				f.Close()
				return nil, err
			}
			values := []interface{}{path, word, strings.Join(r.Suggestions[word], ", ")}
			if err := f.SetSheetRow(MisspellingsSheet, cell, &values); err != nil {
				f.Close()
				return nil, err
			}
			row++
		}
	}
	if err := f.AutoFilter(MisspellingsSheet, fmt.Sprintf("A1:C%d", row-1), nil); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	summary := [][]interface{}{
		{"Run ID", r.ID},
		{"Root", r.Root},
		{"Notebooks checked", r.NotebooksChecked},
		{"Notebooks with misspellings", len(r.Misspelled)},
		{"Misspelled words", r.WordCount()},
	}
	for i, values := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteXLSX writes the report workbook to w.
func WriteXLSX(w io.Writer, r *models.Report) error {
	f, err := ToXLSX(r)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	return f.Write(w)
}
