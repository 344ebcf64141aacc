package render

import (
	"html"
	"strings"

	"github.com/matzehuels/markup/pkg/core/styled"
)

// HTML renders nodes as nested <span> elements with inline styles. Text is
// entity-escaped; newlines are kept as-is, so callers usually wrap the
// result in <pre>.
func HTML(nodes []styled.Node) string {
	var sb strings.Builder
	writeHTML(&sb, nodes)
	return sb.String()
}

func writeHTML(sb *strings.Builder, nodes []styled.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case styled.Text:
			sb.WriteString(html.EscapeString(string(n)))
		case styled.Bold:
			span(sb, "font-weight:bold;", n.Children)
		case styled.Fg:
			span(sb, "color:"+n.Color.Hex()+";", n.Children)
		case styled.Bg:
			span(sb, "background-color:"+n.Color.Hex()+";", n.Children)
		}
	}
}

func span(sb *strings.Builder, style string, children []styled.Node) {
	sb.WriteString(`<span style="`)
	sb.WriteString(style)
	sb.WriteString(`">`)
	writeHTML(sb, children)
	sb.WriteString("</span>")
}

// Plain renders the text of nodes without styling.
func Plain(nodes []styled.Node) string {
	var sb strings.Builder
	writePlain(&sb, nodes)
	return sb.String()
}

func writePlain(sb *strings.Builder, nodes []styled.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case styled.Text:
			sb.WriteString(string(n))
		case styled.Bold:
			writePlain(sb, n.Children)
		case styled.Fg:
			writePlain(sb, n.Children)
		case styled.Bg:
			writePlain(sb, n.Children)
		}
	}
}
