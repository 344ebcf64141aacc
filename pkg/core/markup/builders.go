package markup

import "strings"

// Short constructors for building documents in code.

func T(s string) Text                         { return Text(s) }
func B(children ...Node) Bold                 { return Bold{Children: children} }
func FgCol(c Col, children ...Node) Fg        { return Fg{Color: c, Children: children} }
func BgCol(c Col, children ...Node) Bg        { return Bg{Color: c, Children: children} }
func P(i int) Player                          { return Player(i) }
func G(children ...Node) Group                { return Group{Children: children} }
func Tbl(rows ...Row) Table                   { return Table{Rows: rows} }
func Cel(a Alignment, children ...Node) Cell  { return Cell{Align: a, Children: children} }
func IndentBy(w int, children ...Node) Indent { return Indent{Width: w, Children: children} }
func Cv(layers ...Layer) Canvas               { return Canvas{Layers: layers} }
func L(x, y int, children ...Node) Layer      { return Layer{X: x, Y: y, Children: children} }

func AlignTo(a Alignment, w int, children ...Node) Align {
	return Align{Align: a, Width: w, Children: children}
}

// RowPad inserts a left-aligned cell containing pad between each pair of
// cells in row.
func RowPad(row Row, pad string) Row {
	return RowPadCell(row, Cel(Left, T(pad)))
}

// RowPadCell inserts pad between each pair of cells in row.
func RowPadCell(row Row, pad Cell) Row {
	if len(row) == 0 {
		return nil
	}
	out := make(Row, 0, 2*len(row)-1)
	for i, c := range row {
		if i > 0 {
			out = append(out, pad)
		}
		out = append(out, c)
	}
	return out
}

// SpacedTable builds a table with rowSpacing blank lines between rows and
// colSpacing spaces between columns.
func SpacedTable(rows []Row, rowSpacing, colSpacing int) Table {
	t := Table{Rows: make([]Row, 0, len(rows))}
	for i, r := range rows {
		if i > 0 && rowSpacing > 0 {
			t.Rows = append(t.Rows, Row{Cel(Left, T(strings.Repeat("\n", rowSpacing-1)))})
		}
		if colSpacing > 0 {
			r = RowPad(r, strings.Repeat(" ", colSpacing))
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// Stack lays out each node as a centered row of a single-column table.
func Stack(nodes ...Node) Table {
	rows := make([]Row, len(nodes))
	for i, n := range nodes {
		rows[i] = Row{Cel(Center, n)}
	}
	return Table{Rows: rows}
}
