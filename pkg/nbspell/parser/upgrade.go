package parser

import (
	"strings"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

// upgradeV3 flattens v3 worksheets into a v4 cell list. Heading cells become
// markdown cells with a matching number of leading hashes, and code cells
// take their text from the input field.
func upgradeV3(worksheets []rawWorksheet) []models.Cell {
	var cells []models.Cell
	for _, ws := range worksheets {
		for _, c := range ws.Cells {
			switch c.CellType {
			case "heading":
				level := c.Level
				if level < 1 {
					level = 1
				}
				source := strings.Join(strings.Fields(string(c.Source)), " ")
				cells = append(cells, models.Cell{
					Type:   models.CellMarkdown,
					Source: strings.Repeat("#", level) + " " + source,
				})
			case "code":
				cells = append(cells, models.Cell{
					Type:   models.CellCode,
					Source: string(c.Input),
				})
			case "html":
				cells = append(cells, models.Cell{
					Type:   models.CellMarkdown,
					Source: string(c.Source),
				})
			default:
				cells = append(cells, models.Cell{
					Type:   models.CellType(c.CellType),
					Source: string(c.Source),
				})
			}
		}
	}
	if cells == nil {
		cells = []models.Cell{}
	}
	return cells
}
