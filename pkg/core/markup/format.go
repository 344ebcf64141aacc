package markup

import (
	"strconv"
	"strings"
)

// Format serializes nodes to markup text. Parse(Format(nodes)) yields nodes
// again, except that adjacent Text nodes come back merged and empty Text
// nodes are dropped.
func Format(nodes []Node) string {
	var sb strings.Builder
	writeNodes(&sb, nodes)
	return sb.String()
}

func writeNodes(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		writeNode(sb, n)
	}
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		sb.WriteString(string(n))
	case Bold:
		wrap(sb, "b", "", n.Children)
	case Fg:
		wrap(sb, "fg", n.Color.Args(), n.Children)
	case Bg:
		wrap(sb, "bg", n.Color.Args(), n.Children)
	case Player:
		sb.WriteString("{{player ")
		sb.WriteString(strconv.Itoa(int(n)))
		sb.WriteString("}}")
	case Group:
		writeNodes(sb, n.Children)
	case Table:
		sb.WriteString("{{table}}")
		for _, r := range n.Rows {
			sb.WriteString("{{row}}")
			for _, c := range r {
				wrap(sb, "cell", c.Align.String(), c.Children)
			}
			sb.WriteString("{{/row}}")
		}
		sb.WriteString("{{/table}}")
	case Align:
		wrap(sb, "align", n.Align.String()+" "+strconv.Itoa(n.Width), n.Children)
	case Indent:
		wrap(sb, "indent", strconv.Itoa(n.Width), n.Children)
	case Canvas:
		sb.WriteString("{{canvas}}")
		for _, l := range n.Layers {
			wrap(sb, "layer", strconv.Itoa(l.X)+" "+strconv.Itoa(l.Y), l.Children)
		}
		sb.WriteString("{{/canvas}}")
	}
}

func wrap(sb *strings.Builder, tag, args string, children []Node) {
	sb.WriteString("{{")
	sb.WriteString(tag)
	if args != "" {
		sb.WriteByte(' ')
		sb.WriteString(args)
	}
	sb.WriteString("}}")
	writeNodes(sb, children)
	sb.WriteString("{{/")
	sb.WriteString(tag)
	sb.WriteString("}}")
}
