package styled

import (
	"reflect"
	"testing"

	"github.com/matzehuels/markup/pkg/core/color"
)

func TestToLines(t *testing.T) {
	tests := []struct {
		name string
		in   []Node
		want []Line
	}{
		{"empty", nil, []Line{nil}},
		{"single", []Node{Text("one")}, []Line{{Text("one")}}},
		{"split text", []Node{Text("one\ntwo")}, []Line{{Text("one")}, {Text("two")}}},
		{
			"rewraps styles",
			[]Node{Text("a"), Fg{Color: color.Red, Children: []Node{Bold{Children: []Node{Text("b\nc\nd")}}}}, Text("e")},
			[]Line{
				{Text("a"), Fg{Color: color.Red, Children: []Node{Bold{Children: []Node{Text("b")}}}}},
				{Fg{Color: color.Red, Children: []Node{Bold{Children: []Node{Text("c")}}}}},
				{Fg{Color: color.Red, Children: []Node{Bold{Children: []Node{Text("d")}}}}, Text("e")},
			},
		},
		{"trailing newline", []Node{Text("a\n")}, []Line{{Text("a")}, {Text("")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLines(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToLines() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFromLines(t *testing.T) {
	got := FromLines([]Line{{Text("a")}, {Bold{Children: []Node{Text("b")}}}})
	want := []Node{Text("a"), Text("\n"), Bold{Children: []Node{Text("b")}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FromLines() = %#v, want %#v", got, want)
	}
	if got := FromLines(nil); got != nil {
		t.Errorf("FromLines(nil) = %#v", got)
	}
	if got := FromLines([]Line{{Text("x")}}); !reflect.DeepEqual(got, []Node{Text("x")}) {
		t.Errorf("FromLines(single) = %#v", got)
	}
}

func TestLen(t *testing.T) {
	line := Line{Text("ab"), Bg{Color: color.Blue, Children: []Node{Text("çé"), Fg{Color: color.Red, Children: []Node{Text("日本")}}}}}
	if got := Len(line); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
	if got := Len(Slice(line, 0, Len(line))); got != Len(line) {
		t.Errorf("Len(Slice(all)) = %d, want %d", got, Len(line))
	}
	a, b := Line{Text("xyz")}, line
	if got := Len(Concat(a, b)); got != Len(a)+Len(b) {
		t.Errorf("Len(Concat) = %d, want %d", got, Len(a)+Len(b))
	}
	if got := Width([]Line{{Text("a")}, line, nil}); got != 6 {
		t.Errorf("Width() = %d, want 6", got)
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		line       Line
		start, end int
		want       Line
	}{
		{
			"nested wrappers",
			Line{Fg{Color: color.Red, Children: []Node{Bold{Children: []Node{Text("blah")}}}}},
			1, 3,
			Line{Fg{Color: color.Red, Children: []Node{Bold{Children: []Node{Text("la")}}}}},
		},
		{
			"across siblings",
			Line{Bold{Children: []Node{
				Fg{Color: color.Red, Children: []Node{Text("one"), Text("two")}},
				Bg{Color: color.Blue, Children: []Node{Text("three"), Text("four")}},
				Bg{Color: color.Grey, Children: []Node{Text("five"), Text("six")}},
			}}},
			10, 16,
			Line{Bold{Children: []Node{
				Bg{Color: color.Blue, Children: []Node{Text("e"), Text("four")}},
				Bg{Color: color.Grey, Children: []Node{Text("f")}},
			}}},
		},
		{"empty range", Line{Text("abc")}, 2, 2, nil},
		{"inverted range", Line{Text("abc")}, 3, 1, nil},
		{"runes", Line{Text("héllo")}, 1, 4, Line{Text("éll")}},
		{"past end", Line{Text("abc")}, 1, 10, Line{Text("bc")}},
		{"tail", Line{Text("ab"), Text("cd")}, 2, 4, Line{Text("cd")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(tt.line, tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slice(%d, %d) = %#v, want %#v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

type wantRange struct {
	start, end int
	color      *color.Color
}

func checkRanges(t *testing.T, got []BgRange, want []wantRange) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d ranges %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Start != w.start || g.End != w.end {
			t.Errorf("range %d = [%d,%d), want [%d,%d)", i, g.Start, g.End, w.start, w.end)
		}
		switch {
		case w.color == nil && g.Color != nil:
			t.Errorf("range %d color = %v, want none", i, *g.Color)
		case w.color != nil && (g.Color == nil || *g.Color != *w.color):
			t.Errorf("range %d color = %v, want %v", i, g.Color, *w.color)
		}
	}
}

func ptr(c color.Color) *color.Color { return &c }

func TestBgRanges(t *testing.T) {
	line := Line{
		Text("ab"),
		Bg{Color: color.Blue, Children: []Node{
			Text("cd"),
			Bold{Children: []Node{Bg{Color: color.Red, Children: []Node{Text("e")}}}},
			Fg{Color: color.Green, Children: []Node{Text("fg")}},
		}},
		Text(""),
		Text("h"),
	}
	checkRanges(t, BgRanges(line), []wantRange{
		{0, 2, nil},
		{2, 4, ptr(color.Blue)},
		{4, 5, ptr(color.Red)},
		{5, 7, ptr(color.Blue)},
		{7, 8, nil},
	})
}

func TestBgRangesPartition(t *testing.T) {
	lines := []Line{
		nil,
		{Text("")},
		{Bg{Color: color.Red}},
		{Bg{Color: color.Red, Children: []Node{Text("")}}, Text("x")},
		{Fg{Color: color.Red, Children: []Node{Text("abc"), Bg{Color: color.Teal, Children: []Node{Text("de")}}}}, Text("fgh")},
	}
	for i, l := range lines {
		end := 0
		for _, r := range BgRanges(l) {
			if r.Start != end {
				t.Errorf("line %d: range starts at %d, want %d", i, r.Start, end)
			}
			if r.End <= r.Start {
				t.Errorf("line %d: empty range [%d,%d)", i, r.Start, r.End)
			}
			end = r.End
		}
		if end != Len(l) {
			t.Errorf("line %d: ranges cover [0,%d), want [0,%d)", i, end, Len(l))
		}
	}
}

func TestBgRangeOffset(t *testing.T) {
	r := BgRange{Start: 1, End: 3}.Offset(4)
	if r.Start != 5 || r.End != 7 {
		t.Errorf("Offset() = %+v", r)
	}
}

func TestSpaces(t *testing.T) {
	if Spaces(3) != "   " || Spaces(0) != "" || Spaces(-2) != "" {
		t.Error("Spaces returned wrong padding")
	}
}
