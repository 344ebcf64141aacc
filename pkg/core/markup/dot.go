package markup

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the node tree.
//
// Containers are drawn as boxes labeled with their tag and arguments, text
// as rounded boxes with the quoted content. The document root is a point
// node so that top-level siblings share a parent.
func ToDOT(nodes []Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Markup {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")
	buf.WriteString("  n0 [label=\"\", shape=point];\n")
	w := &dotWriter{buf: &buf, next: 1}
	w.children(0, nodes)
	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf  *bytes.Buffer
	next int
}

func (w *dotWriter) node(label string, attrs string) int {
	id := w.next
	w.next++
	fmt.Fprintf(w.buf, "  n%d [label=%q%s];\n", id, label, attrs)
	return id
}

func (w *dotWriter) edge(from, to int) {
	fmt.Fprintf(w.buf, "  n%d -> n%d;\n", from, to)
}

func (w *dotWriter) children(parent int, nodes []Node) {
	for _, n := range nodes {
		w.edge(parent, w.write(n))
	}
}

func (w *dotWriter) container(label string, children []Node) int {
	id := w.node(label, "")
	w.children(id, children)
	return id
}

func (w *dotWriter) write(n Node) int {
	switch n := n.(type) {
	case Text:
		return w.node(fmt.Sprintf("%q", string(n)), ", style=\"filled,rounded\"")
	case Bold:
		return w.container("b", n.Children)
	case Fg:
		return w.container("fg "+n.Color.Args(), n.Children)
	case Bg:
		return w.container("bg "+n.Color.Args(), n.Children)
	case Player:
		return w.node(fmt.Sprintf("player %d", int(n)), ", shape=ellipse")
	case Group:
		return w.container("group", n.Children)
	case Align:
		return w.container(fmt.Sprintf("align %s %d", n.Align, n.Width), n.Children)
	case Indent:
		return w.container(fmt.Sprintf("indent %d", n.Width), n.Children)
	case Table:
		id := w.node("table", "")
		for _, r := range n.Rows {
			rid := w.node("row", "")
			w.edge(id, rid)
			for _, c := range r {
				w.edge(rid, w.container("cell "+c.Align.String(), c.Children))
			}
		}
		return id
	case Canvas:
		id := w.node("canvas", "")
		for _, l := range n.Layers {
			w.edge(id, w.container(fmt.Sprintf("layer %d %d", l.X, l.Y), l.Children))
		}
		return id
	}
	return w.node("?", "")
}

// RenderSVG renders the node tree as an SVG document using Graphviz.
//
// Errors are returned if Graphviz cannot initialize, the DOT is malformed,
// or rendering fails.
func RenderSVG(ctx context.Context, nodes []Node) ([]byte, error) {
	dot := ToDOT(nodes)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
