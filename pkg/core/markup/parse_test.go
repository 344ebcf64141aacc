package markup

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/errors"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
	}{
		{"empty", nil},
		{"text", []Node{T("hello { world }")}},
		{"bold", []Node{B(T("a")), T("b")}},
		{"empty bold", []Node{B()}},
		{"player", []Node{T("turn: "), P(3)}},
		{"fg literal", []Node{FgCol(Lit(color.Red), T("x"))}},
		{"bg player transforms", []Node{BgCol(PlayerCol(2).Inv().Mono(), T("x"))}},
		{"align", []Node{AlignTo(Right, 12, T("r")), AlignTo(Center, 0, T("c"))}},
		{"indent", []Node{IndentBy(4, T("a\nb"))}},
		{"table", []Node{Tbl(
			Row{Cel(Left, T("a")), Cel(Center)},
			Row{Cel(Right, B(T("b")))},
		)}},
		{"empty table", []Node{Tbl()}},
		{"brace before tag", []Node{T("a{"), B(T("x"))}},
		{"brace before close", []Node{B(T("x{"))}},
		{"brace in cell", []Node{Tbl(Row{Cel(Left, T("x{"))})}},
		{"lone brace before tag", []Node{T("{"), P(1)}},
		{"canvas", []Node{Cv(L(0, 0, T("XXXX")), L(1, 0, T("YY")))}},
		{"nested", []Node{
			Cv(L(5, 10, Tbl(Row{Cel(Center,
				FgCol(Lit(color.Red),
					BgCol(PlayerCol(2).Inv().Mono(),
						P(5),
						AlignTo(Right, 10, IndentBy(10, T("this is some text"))),
					),
				),
			)}))),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Format(tt.nodes)
			got, rest, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", s, err)
			}
			if rest != "" {
				t.Errorf("Parse(%q) remainder = %q, want empty", s, rest)
			}
			if !reflect.DeepEqual(got, tt.nodes) {
				t.Errorf("Parse(Format(x)) = %#v, want %#v", got, tt.nodes)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		nodes []Node
		want  string
	}{
		{[]Node{B(T("hi")), P(2)}, "{{b}}hi{{/b}}{{player 2}}"},
		{[]Node{FgCol(Lit(color.Color{R: 1, G: 2, B: 3}).Mono(), T("x"))}, "{{fg rgb(1,2,3) | mono}}x{{/fg}}"},
		{[]Node{BgCol(PlayerCol(1).Inv().Mono())}, "{{bg player(1) | inv | mono}}{{/bg}}"},
		{[]Node{G(T("a"), G(T("b")))}, "ab"},
		{[]Node{AlignTo(Center, 7, T("x"))}, "{{align center 7}}x{{/align}}"},
		{[]Node{Tbl(Row{Cel(Left, T("a"))})}, "{{table}}{{row}}{{cell left}}a{{/cell}}{{/row}}{{/table}}"},
		{[]Node{Cv(L(2, 3, T("z")))}, "{{canvas}}{{layer 2 3}}z{{/layer}}{{/canvas}}"},
	}
	for _, tt := range tests {
		if got := Format(tt.nodes); got != tt.want {
			t.Errorf("Format() = %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Node
		rest string
	}{
		{"plain text", "just text", []Node{T("just text")}, ""},
		{"single braces", "a {b} c", []Node{T("a {b} c")}, ""},
		{"stray close stops", "abc{{/b}}rest", []Node{T("abc")}, "{{/b}}rest"},
		{"named fg", "{{fg blue}}x{{/fg}}", []Node{FgCol(Lit(color.Blue), T("x"))}, ""},
		{"hex bg", "{{bg #ffffff}}x{{/bg}}", []Node{BgCol(Lit(color.White), T("x"))}, ""},
		{"spaced transforms", "{{fg player(0)|inv |  mono}}x{{/fg}}", []Node{FgCol(PlayerCol(0).Inv().Mono(), T("x"))}, ""},
		{"legacy color", "{{c Red}}x{{/c}}", []Node{FgCol(Lit(color.Red), T("x"))}, ""},
		{"legacy magenta", "{{c magenta}}x{{/c}}", []Node{FgCol(Lit(color.Purple), T("x"))}, ""},
		{"legacy unknown", "{{c chartreuse}}x{{/c}}", []Node{FgCol(Lit(color.Black), T("x"))}, ""},
		{"brace run before tag", "{{{b}}x{{/b}}", []Node{T("{"), B(T("x"))}, ""},
		{"brace run before close", "{{b}}x{{{{/b}}", []Node{B(T("x{{"))}, ""},
		{"largest argument", "{{indent 65536}}x{{/indent}}", []Node{IndentBy(MaxArg, T("x"))}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
			if rest != tt.rest {
				t.Errorf("Parse(%q) remainder = %q, want %q", tt.in, rest, tt.rest)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unterminated tag", "{{b"},
		{"missing close", "{{b}}text"},
		{"mismatched close", "{{b}}x{{/fg}}"},
		{"unknown tag", "{{blink}}x{{/blink}}"},
		{"bold args", "{{b x}}x{{/b}}"},
		{"bad rgb", "{{fg rgb(1,2)}}x{{/fg}}"},
		{"rgb overflow", "{{fg rgb(1,2,300)}}x{{/fg}}"},
		{"bad transform", "{{fg red | bold}}x{{/fg}}"},
		{"bad player", "{{player x}}"},
		{"negative indent", "{{indent -1}}x{{/indent}}"},
		{"bad align", "{{align middle 3}}x{{/align}}"},
		{"align without width", "{{align left}}x{{/align}}"},
		{"text in table", "{{table}}x{{/table}}"},
		{"cell outside row", "{{table}}{{cell left}}x{{/cell}}{{/table}}"},
		{"bad layer", "{{canvas}}{{layer 1}}x{{/layer}}{{/canvas}}"},
		{"unclosed canvas", "{{canvas}}{{layer 0 0}}x{{/layer}}"},
		{"huge layer y", "{{canvas}}{{layer 0 9223372036854775807}}x{{/layer}}{{/canvas}}"},
		{"huge layer x", "{{canvas}}{{layer 65537 0}}x{{/layer}}{{/canvas}}"},
		{"huge indent", "{{indent 99999999}}x{{/indent}}"},
		{"huge align", "{{align left 70000}}x{{/align}}"},
		{"huge player", "{{player 100000}}"},
		{"huge player color", "{{fg player(100000)}}x{{/fg}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, rest, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %#v, %q, want error", tt.in, nodes, rest)
			}
			if !errors.Is(err, errors.ErrCodeInvalidMarkup) {
				t.Errorf("Parse(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidMarkup)
			}
			var se *SyntaxError
			if !stderrors.As(err, &se) {
				t.Errorf("Parse(%q) error %v does not wrap *SyntaxError", tt.in, err)
			}
			if nodes != nil {
				t.Errorf("Parse(%q) returned partial nodes %#v", tt.in, nodes)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("{{b}}x{{/b}}"); !reflect.DeepEqual(got, []Node{B(T("x"))}) {
		t.Errorf("MustParse = %#v", got)
	}
	for _, in := range []string{"{{nope}}", "x{{/b}}"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MustParse(%q) did not panic", in)
				}
			}()
			MustParse(in)
		}()
	}
}
