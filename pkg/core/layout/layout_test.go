package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/markup/pkg/core/color"
	m "github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// plain flattens resolved nodes to their text.
func plain(nodes []styled.Node) string {
	var sb strings.Builder
	var walk func([]styled.Node)
	walk = func(nodes []styled.Node) {
		for _, n := range nodes {
			switch n := n.(type) {
			case styled.Text:
				sb.WriteString(string(n))
			case styled.Bold:
				walk(n.Children)
			case styled.Fg:
				walk(n.Children)
			case styled.Bg:
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return sb.String()
}

func TestResolveColor(t *testing.T) {
	got := Resolve(
		[]m.Node{m.FgCol(m.PlayerCol(0).Inv().Mono(), m.T("hi"))},
		[]Player{{Name: "Ann", Color: color.Color{}}},
	)
	want := []styled.Node{styled.Fg{Color: color.White, Children: []styled.Node{styled.Text("hi")}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %#v, want %#v", got, want)
	}
}

func TestResolvePlayer(t *testing.T) {
	roster := []Player{{Name: "Ann", Color: color.Teal}}
	tests := []struct {
		name string
		p    int
		want styled.Node
	}{
		{"known", 0, styled.Bold{Children: []styled.Node{styled.Fg{Color: color.Teal, Children: []styled.Node{styled.Text("<Ann>")}}}}},
		{"missing", 1, styled.Bold{Children: []styled.Node{styled.Fg{Color: color.Red, Children: []styled.Node{styled.Text("<Player 1>")}}}}},
		{"wraps palette", 9, styled.Bold{Children: []styled.Node{styled.Fg{Color: color.Blue, Children: []styled.Node{styled.Text("<Player 9>")}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve([]m.Node{m.P(tt.p)}, roster)
			if !reflect.DeepEqual(got, []styled.Node{tt.want}) {
				t.Errorf("Resolve(P(%d)) = %#v, want %#v", tt.p, got, tt.want)
			}
		})
	}
}

func TestResolveGroupFlattens(t *testing.T) {
	got := Resolve([]m.Node{m.G(m.T("a"), m.G(m.B(m.T("b"))), m.T("c"))}, nil)
	want := []styled.Node{styled.Text("a"), styled.Bold{Children: []styled.Node{styled.Text("b")}}, styled.Text("c")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %#v, want %#v", got, want)
	}
}

func TestIndent(t *testing.T) {
	if got := plain(Resolve([]m.Node{m.IndentBy(2, m.T("a\nb"))}, nil)); got != "  a\n  b" {
		t.Errorf("indent = %q, want %q", got, "  a\n  b")
	}
	if got := plain(Resolve([]m.Node{m.IndentBy(-2, m.T("a"))}, nil)); got != "a" {
		t.Errorf("negative indent = %q, want %q", got, "a")
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		align m.Alignment
		want  []styled.Node
	}{
		{m.Left, []styled.Node{styled.Text("abc"), styled.Text("       ")}},
		{m.Center, []styled.Node{styled.Text("   "), styled.Text("abc"), styled.Text("    ")}},
		{m.Right, []styled.Node{styled.Text("       "), styled.Text("abc")}},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			got := Resolve([]m.Node{m.AlignTo(tt.align, 10, m.T("abc"))}, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestAlignWidth(t *testing.T) {
	contents := []string{"", "a", "abc", "four", "much longer than width", "two\nlines here"}
	for _, a := range []m.Alignment{m.Left, m.Center, m.Right} {
		for _, w := range []int{0, 1, 5, 10} {
			for _, c := range contents {
				out := Resolve([]m.Node{m.AlignTo(a, w, m.FgCol(m.Lit(color.Red), m.T(c)))}, nil)
				lines := styled.ToLines(out)
				inLines := strings.Split(c, "\n")
				if len(lines) != len(inLines) {
					t.Fatalf("%s %d %q: %d lines, want %d", a, w, c, len(lines), len(inLines))
				}
				for i, l := range lines {
					want := max(w, len(inLines[i]))
					if got := styled.Len(l); got != want {
						t.Errorf("%s %d %q line %d: width %d, want %d", a, w, c, i, got, want)
					}
					if txt := plain(l); strings.Count(txt, inLines[i]) < 1 || strings.TrimSpace(txt) != strings.TrimSpace(inLines[i]) {
						t.Errorf("%s %d %q line %d: %q does not contain content once", a, w, c, i, txt)
					}
				}
			}
		}
	}
}

func TestTableAlign(t *testing.T) {
	doc := []m.Node{m.Tbl(
		m.Row{m.Cel(m.Left), m.Cel(m.Center, m.FgCol(m.Lit(color.Grey), m.T("blah")))},
		m.Row{m.Cel(m.Right, m.T("header")), m.Cel(m.Center, m.T("some long text"))},
	)}
	want := "           blah     \nheadersome long text"
	if got := plain(Resolve(doc, nil)); got != want {
		t.Errorf("table = %q, want %q", got, want)
	}
}

func TestTableInTable(t *testing.T) {
	inner := m.Tbl(
		m.Row{m.Cel(m.Left, m.T("one"))},
		m.Row{m.Cel(m.Left, m.T("two"))},
		m.Row{m.Cel(m.Left, m.T("three"))},
	)
	outer := m.Tbl(m.Row{m.Cel(m.Left, inner)})
	if a, b := plain(Resolve([]m.Node{inner}, nil)), plain(Resolve([]m.Node{outer}, nil)); a != b {
		t.Errorf("nested table = %q, want %q", b, a)
	}
}

func TestTableColumns(t *testing.T) {
	doc := []m.Node{m.Tbl(
		m.Row{m.Cel(m.Left, m.T("a")), m.Cel(m.Right, m.T("bb")), m.Cel(m.Center, m.T("c"))},
		m.Row{m.Cel(m.Center, m.T("dddd\ne"))},
		m.Row{},
		m.Row{m.Cel(m.Right, m.T("f")), m.Cel(m.Left, m.B(m.T("ggggg")))},
	)}
	lines := strings.Split(plain(Resolve(doc, nil)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines %q, want 5", len(lines), lines)
	}
	for i, l := range lines {
		if len(l) != 4+5+1 {
			t.Errorf("line %d %q: width %d, want 10", i, l, len(l))
		}
	}
	if lines[0] != "a      bbc" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "dddd      " || lines[2] != " e        " {
		t.Errorf("multi-line cell = %q, %q", lines[1], lines[2])
	}
	if lines[4] != "   fggggg " {
		t.Errorf("line 4 = %q", lines[4])
	}
}

func TestTableEmpty(t *testing.T) {
	if got := Resolve([]m.Node{m.Tbl()}, nil); len(got) != 0 {
		t.Errorf("empty table = %#v, want nothing", got)
	}
	if got := plain(Resolve([]m.Node{m.Tbl(m.Row{}, m.Row{})}, nil)); got != "\n" {
		t.Errorf("cell-less rows = %q, want %q", got, "\n")
	}
}

func TestSpacedTableAndStack(t *testing.T) {
	rows := []m.Row{
		{m.Cel(m.Left, m.T("a")), m.Cel(m.Left, m.T("b"))},
		{m.Cel(m.Left, m.T("c")), m.Cel(m.Left, m.T("d"))},
	}
	if got := plain(Resolve([]m.Node{m.SpacedTable(rows, 1, 2)}, nil)); got != "a  b\n    \nc  d" {
		t.Errorf("spaced table = %q", got)
	}
	if got := plain(Resolve([]m.Node{m.Stack(m.T("title"), m.T("x"))}, nil)); got != "title\n  x  " {
		t.Errorf("stack = %q", got)
	}
}

func TestHugeArgumentsAreClamped(t *testing.T) {
	huge := int(^uint(0) >> 1)
	tests := []struct {
		name string
		node m.Node
		want string
	}{
		{"indent", m.IndentBy(huge, m.T("x")), strings.Repeat(" ", m.MaxArg) + "x"},
		{"align", m.AlignTo(m.Right, huge, m.T("x")), strings.Repeat(" ", m.MaxArg-1) + "x"},
		{"layer x", m.Cv(m.L(huge, 0, m.T("x"))), strings.Repeat(" ", m.MaxArg) + "x"},
		{"layer y", m.Cv(m.L(0, huge, m.T("x"))), strings.Repeat("\n", m.MaxArg) + "x"},
		{"negative layer", m.Cv(m.L(-huge, -huge, m.T("x"))), "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(Resolve([]m.Node{tt.node}, nil)); got != tt.want {
				t.Errorf("Resolve() = %d bytes, want %d", len(got), len(tt.want))
			}
		})
	}
}
