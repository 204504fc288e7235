package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

// RenderTable renders one row per (notebook, word) pair.
func RenderTable(r *models.Report, suggestions bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"Notebook", "Word"}
	if suggestions {
		header = append(header, "Suggestions")
	}
	tw.AppendHeader(header)

	for _, path := range r.Paths() {
		for _, word := range r.Words(path) {
			row := table.Row{path, word}
			if suggestions {
				row = append(row, strings.Join(r.Suggestions[word], ", "))
			}
			tw.AppendRow(row)
		}
		tw.AppendSeparator()
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft, AutoMerge: true},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	tw.SetCaption("%d misspelled word(s) in %d notebook(s)", r.WordCount(), len(r.Misspelled))

	return tw.Render()
}
