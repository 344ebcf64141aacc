package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// ANSI renders nodes with true-color SGR sequences. Output starts in the
// default style (black on white) and ends with a reset.
func ANSI(nodes []styled.Node) string {
	var sb strings.Builder
	def := color.DefaultStyle()
	sb.WriteString(def.ANSI())
	writeANSI(&sb, nodes, def)
	sb.WriteString(ansi.ResetStyle)
	return sb.String()
}

func writeANSI(sb *strings.Builder, nodes []styled.Node, cur color.Style) {
	for _, n := range nodes {
		next := cur
		var children []styled.Node
		switch n := n.(type) {
		case styled.Text:
			sb.WriteString(string(n))
			continue
		case styled.Bold:
			next.Bold = true
			children = n.Children
		case styled.Fg:
			next.Fg = n.Color
			children = n.Children
		case styled.Bg:
			next.Bg = n.Color
			children = n.Children
		}
		sb.WriteString(next.ANSI())
		writeANSI(sb, children, next)
		sb.WriteString(cur.ANSI())
	}
}
