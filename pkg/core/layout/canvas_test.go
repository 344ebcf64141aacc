package layout

import (
	"testing"

	"github.com/matzehuels/markup/pkg/core/color"
	m "github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// bgAt returns the background of every column of a single resolved line.
func bgAt(t *testing.T, nodes []styled.Node) []*color.Color {
	t.Helper()
	var cols []*color.Color
	for _, r := range styled.BgRanges(nodes) {
		for i := r.Start; i < r.End; i++ {
			cols = append(cols, r.Color)
		}
	}
	return cols
}

func checkBg(t *testing.T, got []*color.Color, want []*color.Color) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		switch {
		case want[i] == nil && got[i] != nil:
			t.Errorf("column %d: bg %v, want none", i, *got[i])
		case want[i] != nil && got[i] == nil:
			t.Errorf("column %d: no bg, want %v", i, *want[i])
		case want[i] != nil && *got[i] != *want[i]:
			t.Errorf("column %d: bg %v, want %v", i, *got[i], *want[i])
		}
	}
}

func TestCanvasPlain(t *testing.T) {
	tests := []struct {
		name   string
		layers []m.Layer
		want   string
	}{
		{"overwrite", []m.Layer{m.L(0, 0, m.T("XXXX")), m.L(1, 0, m.T("YY"))}, "XYYX"},
		{"cover all", []m.Layer{m.L(1, 0, m.T("XX")), m.L(0, 0, m.T("YYYY"))}, "YYYY"},
		{"overlap left", []m.Layer{m.L(2, 0, m.T("XXXX")), m.L(0, 0, m.T("YYY"))}, "YYYXXX"},
		{"overlap right", []m.Layer{m.L(0, 0, m.T("XXXX")), m.L(2, 0, m.T("YYY"))}, "XXYYY"},
		{"adjacent", []m.Layer{m.L(0, 0, m.T("ab")), m.L(2, 0, m.T("cd"))}, "abcd"},
		{"gap", []m.Layer{m.L(3, 0, m.T("b")), m.L(0, 0, m.T("a"))}, "a  b"},
		{"blank rows", []m.Layer{m.L(0, 0, m.T("a")), m.L(1, 2, m.T("c"))}, "a\n\n c"},
		{"multi-line layer", []m.Layer{m.L(0, 0, m.T("....\n....")), m.L(1, 0, m.T("1\n2"))}, ".1..\n.2.."},
		{"zero width", []m.Layer{m.L(0, 0, m.T("XXXX")), m.L(1, 0, m.T(""))}, "XXXX"},
		{"negative position", []m.Layer{m.L(-3, -1, m.T("x"))}, "x"},
		{"nested canvas", []m.Layer{m.L(1, 1, m.Cv(m.L(0, 0, m.T("ab")), m.L(1, 0, m.T("Z"))))}, "\n aZ"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plain(Resolve([]m.Node{m.Cv(tt.layers...)}, nil))
			if got != tt.want {
				t.Errorf("canvas = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvasInheritsBackground(t *testing.T) {
	blue, red, green := color.Blue, color.Red, color.Green

	t.Run("inside", func(t *testing.T) {
		out := Resolve([]m.Node{m.Cv(
			m.L(0, 0, m.BgCol(m.Lit(blue), m.T("XXXX"))),
			m.L(1, 0, m.FgCol(m.Lit(red), m.T("YY"))),
		)}, nil)
		if got := plain(out); got != "XYYX" {
			t.Fatalf("canvas = %q", got)
		}
		checkBg(t, bgAt(t, out), []*color.Color{&blue, &blue, &blue, &blue})
	})

	t.Run("explicit background wins", func(t *testing.T) {
		out := Resolve([]m.Node{m.Cv(
			m.L(0, 0, m.BgCol(m.Lit(blue), m.T("XXXX"))),
			m.L(1, 0, m.T("Y"), m.BgCol(m.Lit(green), m.T("Y"))),
		)}, nil)
		checkBg(t, bgAt(t, out), []*color.Color{&blue, &blue, &green, &blue})
	})

	t.Run("partly over nothing", func(t *testing.T) {
		out := Resolve([]m.Node{m.Cv(
			m.L(0, 0, m.BgCol(m.Lit(red), m.T("XX"))),
			m.L(1, 0, m.T("YYYY")),
		)}, nil)
		if got := plain(out); got != "XYYYY" {
			t.Fatalf("canvas = %q", got)
		}
		checkBg(t, bgAt(t, out), []*color.Color{&red, &red, nil, nil, nil})
	})

	t.Run("across two backgrounds", func(t *testing.T) {
		out := Resolve([]m.Node{m.Cv(
			m.L(0, 0, m.BgCol(m.Lit(red), m.T("XX")), m.T("__"), m.BgCol(m.Lit(blue), m.T("XX"))),
			m.L(1, 0, m.T("abcd")),
		)}, nil)
		if got := plain(out); got != "XabcdX" {
			t.Fatalf("canvas = %q", got)
		}
		checkBg(t, bgAt(t, out), []*color.Color{&red, &red, nil, nil, &blue, &blue})
	})

	t.Run("transparent over nothing", func(t *testing.T) {
		out := Resolve([]m.Node{m.Cv(m.L(2, 0, m.B(m.T("ab"))))}, nil)
		if got := plain(out); got != "  ab" {
			t.Fatalf("canvas = %q", got)
		}
		checkBg(t, bgAt(t, out), []*color.Color{nil, nil, nil, nil})
	})

	t.Run("later layers see earlier composite", func(t *testing.T) {
		out := Resolve([]m.Node{m.Cv(
			m.L(0, 0, m.BgCol(m.Lit(red), m.T("....."))),
			m.L(0, 0, m.BgCol(m.Lit(blue), m.T(".."))),
			m.L(1, 0, m.T("ooo")),
		)}, nil)
		checkBg(t, bgAt(t, out), []*color.Color{&blue, &blue, &red, &red, &red})
	})
}
