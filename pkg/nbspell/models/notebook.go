// Package models defines data structures for notebook spell checking.
package models

// CellType is the cell_type tag of a notebook cell.
type CellType string

const (
	// CellMarkdown marks prose cells; only these are spell checked.
	CellMarkdown CellType = "markdown"
	// CellCode marks executable cells.
	CellCode CellType = "code"
	// CellRaw marks raw (unrendered) cells.
	CellRaw CellType = "raw"
)

// Cell represents one unit of a notebook.
type Cell struct {
	// Type is the cell type tag. Unknown tags are kept verbatim.
	Type CellType `json:"cell_type"`
	// Source is the cell text with multiline sources already joined.
	Source string `json:"source"`
}

// IsMarkdown reports whether the cell holds markdown prose.
func (c Cell) IsMarkdown() bool {
	return c.Type == CellMarkdown
}

// Notebook represents a parsed notebook document in version 4 form.
type Notebook struct {
	// Path is the file the notebook was read from (empty for readers).
	Path string `json:"path,omitempty"`
	// Format is the nbformat major version of the source document.
	Format int `json:"nbformat"`
	// FormatMinor is the nbformat minor version of the source document.
	FormatMinor int `json:"nbformat_minor"`
	// Cells is the ordered cell sequence.
	Cells []Cell `json:"cells"`
}

// MarkdownCells returns the markdown cells in document order.
func (n *Notebook) MarkdownCells() []Cell {
	var cells []Cell
	for _, c := range n.Cells {
		if c.IsMarkdown() {
			cells = append(cells, c)
		}
	}
	return cells
}
