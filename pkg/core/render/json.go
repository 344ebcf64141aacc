package render

import (
	"encoding/json"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// Span is a run of text with a single style. Fg and Bg are "#rrggbb" and
// empty when no color is set.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
	Fg   string `json:"fg,omitempty"`
	Bg   string `json:"bg,omitempty"`
}

// Document is the JSON form of a resolved document.
type Document struct {
	Width int      `json:"width"`
	Lines [][]Span `json:"lines"`
}

// Spans flattens nodes into lines of styled spans. Empty text is dropped.
func Spans(nodes []styled.Node) [][]Span {
	lines := styled.ToLines(nodes)
	out := make([][]Span, len(lines))
	for i, l := range lines {
		out[i] = appendSpans([]Span{}, l, Span{})
	}
	return out
}

func appendSpans(out []Span, nodes []styled.Node, st Span) []Span {
	for _, n := range nodes {
		switch n := n.(type) {
		case styled.Text:
			if n == "" {
				continue
			}
			s := st
			s.Text = string(n)
			out = append(out, s)
		case styled.Bold:
			s := st
			s.Bold = true
			out = appendSpans(out, n.Children, s)
		case styled.Fg:
			s := st
			s.Fg = n.Color.Hex()
			out = appendSpans(out, n.Children, s)
		case styled.Bg:
			s := st
			s.Bg = n.Color.Hex()
			out = appendSpans(out, n.Children, s)
		}
	}
	return out
}

// JSON renders nodes as an indented [Document].
func JSON(nodes []styled.Node) ([]byte, error) {
	doc := Document{
		Width: styled.Width(styled.ToLines(nodes)),
		Lines: Spans(nodes),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SpanStyle returns the full style of s, filling unset colors from the
// default style.
func SpanStyle(s Span) color.Style {
	st := color.DefaultStyle()
	st.Bold = s.Bold
	if c, err := color.ParseHex(s.Fg); err == nil {
		st.Fg = c
	}
	if c, err := color.ParseHex(s.Bg); err == nil {
		st.Bg = c
	}
	return st
}
