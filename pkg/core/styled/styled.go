// Package styled holds resolved documents: text with literal styling and no
// layout, and the line operations the layout engine is built from.
//
// A [Line] is a node sequence whose text contains no newlines. [ToLines]
// splits a document into lines, re-wrapping each fragment in the styles that
// enclosed it, and [FromLines] joins them back. All widths are counted in
// runes, one column per rune.
package styled

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/markup/pkg/core/color"
)

// Node is an element of a resolved document: Text, Bold, Fg or Bg.
type Node interface {
	styledNode()
}

// Text is literal content.
type Text string

// Bold renders its children in bold.
type Bold struct {
	Children []Node
}

// Fg sets the foreground color of its children.
type Fg struct {
	Color    color.Color
	Children []Node
}

// Bg sets the background color of its children.
type Bg struct {
	Color    color.Color
	Children []Node
}

func (Text) styledNode() {}
func (Bold) styledNode() {}
func (Fg) styledNode()   {}
func (Bg) styledNode()   {}

// Line is a resolved node sequence containing no newlines.
type Line []Node

// Spaces returns a Text of n spaces.
func Spaces(n int) Text {
	if n <= 0 {
		return ""
	}
	return Text(strings.Repeat(" ", n))
}

// rewrap returns a copy of wrapper n holding children.
func rewrap(n Node, children []Node) Node {
	switch n := n.(type) {
	case Bold:
		return Bold{Children: children}
	case Fg:
		return Fg{Color: n.Color, Children: children}
	case Bg:
		return Bg{Color: n.Color, Children: children}
	}
	return n
}

func childrenOf(n Node) []Node {
	switch n := n.(type) {
	case Bold:
		return n.Children
	case Fg:
		return n.Children
	case Bg:
		return n.Children
	}
	return nil
}

// ToLines splits nodes at every newline. Fragments keep the Bold, Fg and Bg
// wrappers that enclosed them. The result has at least one line.
func ToLines(nodes []Node) []Line {
	var lines []Line
	var cur Line
	for _, n := range nodes {
		var parts []Line
		switch n := n.(type) {
		case Text:
			for _, s := range strings.Split(string(n), "\n") {
				parts = append(parts, Line{Text(s)})
			}
		default:
			for _, l := range ToLines(childrenOf(n)) {
				parts = append(parts, Line{rewrap(n, l)})
			}
		}
		cur = append(cur, parts[0]...)
		if len(parts) > 1 {
			lines = append(lines, cur)
			lines = append(lines, parts[1:len(parts)-1]...)
			cur = append(Line(nil), parts[len(parts)-1]...)
		}
	}
	return append(lines, cur)
}

// FromLines joins lines with newline Text nodes.
func FromLines(lines []Line) []Node {
	var out []Node
	for i, l := range lines {
		if i > 0 {
			out = append(out, Text("\n"))
		}
		out = append(out, l...)
	}
	return out
}

// Concat joins lines end to end into a single line.
func Concat(lines ...Line) Line {
	var out Line
	for _, l := range lines {
		out = append(out, l...)
	}
	return out
}

// Len returns the width of a line in runes. Newlines are counted like any
// other rune, so callers should pass lines from ToLines.
func Len(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		if t, ok := node.(Text); ok {
			n += utf8.RuneCountInString(string(t))
			continue
		}
		n += Len(childrenOf(node))
	}
	return n
}

// Width returns the width of the widest line.
func Width(lines []Line) int {
	w := 0
	for _, l := range lines {
		w = max(w, Len(l))
	}
	return w
}

// Slice returns the runes of line in [start, end), keeping the wrappers
// around them. It returns nil if start >= end.
func Slice(line []Node, start, end int) Line {
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}
	var out Line
	offset := 0
	for _, n := range line {
		nLen := Len([]Node{n})
		nStart, nEnd := offset, offset+nLen
		offset = nEnd
		if nEnd <= start || nStart >= end {
			continue
		}
		from, to := max(start, nStart)-nStart, min(end, nEnd)-nStart
		if t, ok := n.(Text); ok {
			out = append(out, Text(runeSlice(string(t), from, to)))
		} else {
			out = append(out, rewrap(n, Slice(childrenOf(n), from, to)))
		}
		if nEnd >= end {
			break
		}
	}
	return out
}

func runeSlice(s string, from, to int) string {
	r := []rune(s)
	return string(r[from:min(to, len(r))])
}

// BgRange is the effective background over [Start, End) of a line. A nil
// Color means no background is set.
type BgRange struct {
	Start, End int
	Color      *color.Color
}

// Offset returns r shifted right by n columns.
func (r BgRange) Offset(n int) BgRange {
	r.Start += n
	r.End += n
	return r
}

// BgRanges describes the background of every column of line. The ranges are
// contiguous and cover exactly [0, Len(line)). The innermost Bg wins.
func BgRanges(line []Node) []BgRange {
	var out []BgRange
	bgRanges(line, nil, 0, &out)
	return out
}

func bgRanges(nodes []Node, bg *color.Color, offset int, out *[]BgRange) int {
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			w := utf8.RuneCountInString(string(n))
			if w == 0 {
				continue
			}
			*out = append(*out, BgRange{Start: offset, End: offset + w, Color: bg})
			offset += w
		case Bg:
			c := n.Color
			offset = bgRanges(n.Children, &c, offset, out)
		default:
			offset = bgRanges(childrenOf(n), bg, offset, out)
		}
	}
	return offset
}
