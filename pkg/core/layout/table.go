package layout

import (
	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// table lays out rows in two passes. The first resolves every cell and
// measures column widths and row heights; the second aligns each cell line
// to its column width. Missing cells are blank.
func table(rows []markup.Row, r Roster) []styled.Node {
	cells := make([][][]styled.Line, len(rows))
	heights := make([]int, len(rows))
	var widths []int
	for ri, row := range rows {
		heights[ri] = 1
		cells[ri] = make([][]styled.Line, len(row))
		for ci, cell := range row {
			lines := styled.ToLines(resolve(cell.Children, r))
			cells[ri][ci] = lines
			heights[ri] = max(heights[ri], len(lines))
			if ci >= len(widths) {
				widths = append(widths, 0)
			}
			widths[ci] = max(widths[ci], styled.Width(lines))
		}
	}

	var out []styled.Line
	for ri, row := range rows {
		for li := 0; li < heights[ri]; li++ {
			var line styled.Line
			for ci, w := range widths {
				if ci < len(row) && li < len(cells[ri][ci]) {
					line = append(line, alignLine(row[ci].Align, w, cells[ri][ci][li])...)
				} else if w > 0 {
					line = append(line, styled.Spaces(w))
				}
			}
			out = append(out, line)
		}
	}
	return styled.FromLines(out)
}
