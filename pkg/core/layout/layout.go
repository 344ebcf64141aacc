// Package layout resolves markup documents into styled text.
//
// [Resolve] substitutes player references using a roster and expands the
// layout nodes (Align, Indent, Table and Canvas) into plain styled lines.
// Resolution is a pure function of the document and the roster and never
// fails: unknown players get a palette color and a synthetic name, and
// negative widths or positions are treated as zero.
package layout

import (
	"fmt"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// Player is a roster entry.
type Player struct {
	Name  string
	Color color.Color
}

// Roster is an ordered list of players indexed by player number.
type Roster []Player

// Color returns the color of player p, falling back to the default palette.
func (r Roster) Color(p int) color.Color {
	if p >= 0 && p < len(r) {
		return r[p].Color
	}
	return color.PlayerColor(p)
}

// Name returns the name of player p, falling back to "Player N".
func (r Roster) Name(p int) string {
	if p >= 0 && p < len(r) {
		return r[p].Name
	}
	return fmt.Sprintf("Player %d", p)
}

// Resolve expands nodes for the given roster.
func Resolve(nodes []markup.Node, players []Player) []styled.Node {
	return resolve(nodes, Roster(players))
}

func resolve(nodes []markup.Node, r Roster) []styled.Node {
	var out []styled.Node
	for _, n := range nodes {
		switch n := n.(type) {
		case markup.Text:
			out = append(out, styled.Text(n))
		case markup.Bold:
			out = append(out, styled.Bold{Children: resolve(n.Children, r)})
		case markup.Fg:
			out = append(out, styled.Fg{Color: n.Color.Resolve(r.Color), Children: resolve(n.Children, r)})
		case markup.Bg:
			out = append(out, styled.Bg{Color: n.Color.Resolve(r.Color), Children: resolve(n.Children, r)})
		case markup.Player:
			out = append(out, playerName(int(n), r))
		case markup.Group:
			out = append(out, resolve(n.Children, r)...)
		case markup.Align:
			out = append(out, align(n.Align, clampArg(n.Width), resolve(n.Children, r))...)
		case markup.Indent:
			out = append(out, indent(clampArg(n.Width), resolve(n.Children, r))...)
		case markup.Table:
			out = append(out, table(n.Rows, r)...)
		case markup.Canvas:
			out = append(out, canvas(n.Layers, r)...)
		}
	}
	return out
}

// clampArg limits widths and offsets of trees built in code to the range
// the parser accepts.
func clampArg(v int) int {
	return min(max(v, 0), markup.MaxArg)
}

func playerName(p int, r Roster) styled.Node {
	return styled.Bold{Children: []styled.Node{
		styled.Fg{Color: r.Color(p), Children: []styled.Node{
			styled.Text("<" + r.Name(p) + ">"),
		}},
	}}
}

// alignLine pads a single line to width. Lines wider than width are
// returned unchanged.
func alignLine(a markup.Alignment, width int, line styled.Line) styled.Line {
	diff := max(width-styled.Len(line), 0)
	out := make(styled.Line, 0, len(line)+2)
	switch a {
	case markup.Center:
		if before := diff / 2; before > 0 {
			out = append(out, styled.Spaces(before))
		}
		out = append(out, line...)
		if after := diff - diff/2; after > 0 {
			out = append(out, styled.Spaces(after))
		}
	case markup.Right:
		if diff > 0 {
			out = append(out, styled.Spaces(diff))
		}
		out = append(out, line...)
	default:
		out = append(out, line...)
		if diff > 0 {
			out = append(out, styled.Spaces(diff))
		}
	}
	return out
}

func align(a markup.Alignment, width int, nodes []styled.Node) []styled.Node {
	lines := styled.ToLines(nodes)
	for i, l := range lines {
		lines[i] = alignLine(a, width, l)
	}
	return styled.FromLines(lines)
}

func indent(width int, nodes []styled.Node) []styled.Node {
	lines := styled.ToLines(nodes)
	if width <= 0 {
		return styled.FromLines(lines)
	}
	for i, l := range lines {
		lines[i] = append(styled.Line{styled.Spaces(width)}, l...)
	}
	return styled.FromLines(lines)
}
