package layout

import (
	"slices"

	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// fragment is a piece of a canvas row anchored at column x.
type fragment struct {
	x    int
	line styled.Line
}

func (f fragment) end() int {
	return f.x + styled.Len(f.line)
}

// canvas composites layers in order, later layers on top. Each new fragment
// first inherits the background already composited beneath its transparent
// parts, then clips the fragments it covers.
func canvas(layers []markup.Layer, r Roster) []styled.Node {
	var rows [][]fragment
	for _, layer := range layers {
		x, y := clampArg(layer.X), clampArg(layer.Y)
		lines := styled.ToLines(resolve(layer.Children, r))
		for len(rows) < y+len(lines) {
			rows = append(rows, nil)
		}
		for i, line := range lines {
			if styled.Len(line) == 0 {
				continue
			}
			row := y + i
			f := fragment{x: x, line: inherit(line, x, rows[row])}
			rows[row] = append(clip(rows[row], f.x, f.end()), f)
		}
	}

	out := make([]styled.Line, len(rows))
	for i, frags := range rows {
		slices.SortStableFunc(frags, func(a, b fragment) int { return a.x - b.x })
		last := 0
		for _, f := range frags {
			if f.x > last {
				out[i] = append(out[i], styled.Spaces(f.x-last))
			}
			out[i] = append(out[i], f.line...)
			last = f.end()
		}
	}
	return styled.FromLines(out)
}

// inherit wraps the transparent parts of line, placed at column x, in the
// background of the fragments already in the row. Parts with an explicit
// background, or with nothing beneath them, are kept as they are.
func inherit(line styled.Line, x int, row []fragment) styled.Line {
	var under []styled.BgRange
	for _, f := range row {
		for _, br := range styled.BgRanges(f.line) {
			if br.Color != nil {
				under = append(under, br.Offset(f.x))
			}
		}
	}
	if len(under) == 0 {
		return line
	}
	slices.SortFunc(under, func(a, b styled.BgRange) int { return a.Start - b.Start })

	var out styled.Line
	for _, br := range styled.BgRanges(line) {
		if br.Color != nil {
			out = append(out, styled.Slice(line, br.Start, br.End)...)
			continue
		}
		pos := br.Start
		for _, u := range under {
			start, end := max(u.Start-x, pos), min(u.End-x, br.End)
			if start >= end {
				continue
			}
			if start > pos {
				out = append(out, styled.Slice(line, pos, start)...)
			}
			out = append(out, styled.Bg{Color: *u.Color, Children: styled.Slice(line, start, end)})
			pos = end
		}
		if pos < br.End {
			out = append(out, styled.Slice(line, pos, br.End)...)
		}
	}
	return out
}

// clip removes the columns [start, end) from the fragments in row, splitting
// fragments that overlap the range partially.
func clip(row []fragment, start, end int) []fragment {
	out := row[:0:0]
	for _, f := range row {
		fEnd := f.end()
		switch {
		case fEnd <= start || f.x >= end:
			out = append(out, f)
		case f.x >= start && fEnd <= end:
			// fully covered
		default:
			if f.x < start {
				out = append(out, fragment{x: f.x, line: styled.Slice(f.line, 0, start-f.x)})
			}
			if fEnd > end {
				out = append(out, fragment{x: end, line: styled.Slice(f.line, end-f.x, fEnd-f.x)})
			}
		}
	}
	return out
}
