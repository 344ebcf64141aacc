package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/errors"
)

// SyntaxError describes malformed markup text.
type SyntaxError struct {
	Offset int    // Byte offset of the offending tag
	Msg    string // What was wrong
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Parse reads markup text into nodes. Parsing stops at the end of input or
// at a closing tag that has no matching opening tag; the unconsumed text is
// returned as the remainder.
//
// Malformed input fails the whole parse. The returned error carries
// errors.ErrCodeInvalidMarkup and wraps a *SyntaxError.
func Parse(s string) ([]Node, string, error) {
	p := &parser{src: s}
	nodes, err := p.nodes("")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidMarkup, err, "parse markup")
	}
	return nodes, s[p.pos:], nil
}

// MustParse is like Parse but panics on error or trailing input. It is
// intended for markup literals compiled into a program.
func MustParse(s string) []Node {
	nodes, rest, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if rest != "" {
		panic(fmt.Sprintf("markup: unexpected trailing input %q", rest))
	}
	return nodes
}

type parser struct {
	src string
	pos int
}

// tag is a parsed "{{name args}}" or "{{/name}}" header.
type tag struct {
	start int
	end   int
	name  string
	args  string
	close bool
}

func (p *parser) errorf(at int, format string, args ...any) error {
	return &SyntaxError{Offset: at, Msg: fmt.Sprintf(format, args...)}
}

// peekTag reads the tag at the current position without consuming it.
func (p *parser) peekTag() (tag, error) {
	end := strings.Index(p.src[p.pos+2:], "}}")
	if end < 0 {
		return tag{}, p.errorf(p.pos, "unterminated tag")
	}
	header := p.src[p.pos+2 : p.pos+2+end]
	t := tag{start: p.pos, end: p.pos + 2 + end + 2}
	if strings.HasPrefix(header, "/") {
		t.close = true
		t.name = header[1:]
		return t, nil
	}
	t.name, t.args, _ = strings.Cut(header, " ")
	return t, nil
}

// nextTag returns the offset of the next tag at or after the current
// position, or len(src). In a run of more than two braces the tag starts at
// the last "{{", so text ending in "{" stays text.
func (p *parser) nextTag() int {
	i := strings.Index(p.src[p.pos:], "{{")
	if i < 0 {
		return len(p.src)
	}
	i += p.pos
	for i+2 < len(p.src) && p.src[i+2] == '{' {
		i++
	}
	return i
}

// nodes parses content until the closing tag for closeName. An empty
// closeName means top level.
func (p *parser) nodes(closeName string) ([]Node, error) {
	var out []Node
	for {
		if p.pos >= len(p.src) {
			if closeName != "" {
				return nil, p.errorf(p.pos, "missing {{/%s}}", closeName)
			}
			return out, nil
		}
		if next := p.nextTag(); next > p.pos {
			out = append(out, Text(p.src[p.pos:next]))
			p.pos = next
			continue
		}
		t, err := p.peekTag()
		if err != nil {
			return nil, err
		}
		if t.close {
			switch {
			case closeName == "":
				return out, nil
			case t.name == closeName:
				p.pos = t.end
				return out, nil
			}
			return nil, p.errorf(t.start, "unexpected {{/%s}}, want {{/%s}}", t.name, closeName)
		}
		p.pos = t.end
		n, err := p.element(t)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}

func (p *parser) element(t tag) (Node, error) {
	switch t.name {
	case "b":
		if err := p.noArgs(t); err != nil {
			return nil, err
		}
		children, err := p.nodes(t.name)
		return Bold{Children: children}, err
	case "fg", "bg":
		c, err := parseCol(t.args)
		if err != nil {
			return nil, p.errorf(t.start, "{{%s}}: %v", t.name, err)
		}
		children, err := p.nodes(t.name)
		if t.name == "fg" {
			return Fg{Color: c, Children: children}, err
		}
		return Bg{Color: c, Children: children}, err
	case "c":
		children, err := p.nodes(t.name)
		return Fg{Color: Lit(legacyColor(t.args)), Children: children}, err
	case "player":
		i, err := p.ints(t, 1)
		if err != nil {
			return nil, err
		}
		return Player(i[0]), nil
	case "align":
		a, w, ok := strings.Cut(t.args, " ")
		if !ok {
			return nil, p.errorf(t.start, "{{align}} needs an alignment and a width")
		}
		al, err := ParseAlignment(a)
		if err != nil {
			return nil, p.errorf(t.start, "%s", errors.UserMessage(err))
		}
		width, err := p.ints(tag{start: t.start, name: t.name, args: w}, 1)
		if err != nil {
			return nil, err
		}
		children, err := p.nodes(t.name)
		return Align{Align: al, Width: width[0], Children: children}, err
	case "indent":
		width, err := p.ints(t, 1)
		if err != nil {
			return nil, err
		}
		children, err := p.nodes(t.name)
		return Indent{Width: width[0], Children: children}, err
	case "table":
		if err := p.noArgs(t); err != nil {
			return nil, err
		}
		return p.table()
	case "canvas":
		if err := p.noArgs(t); err != nil {
			return nil, err
		}
		return p.canvas()
	}
	return nil, p.errorf(t.start, "unknown tag {{%s}}", t.name)
}

// children reads a sequence of tags named want, each handled by fn, until
// the closing tag for parent. Text between them is not allowed.
func (p *parser) children(parent, want string, fn func(tag) error) error {
	for {
		if p.pos >= len(p.src) {
			return p.errorf(p.pos, "missing {{/%s}}", parent)
		}
		if !strings.HasPrefix(p.src[p.pos:], "{{") {
			return p.errorf(p.pos, "unexpected text in {{%s}}, want {{%s}}", parent, want)
		}
		t, err := p.peekTag()
		if err != nil {
			return err
		}
		switch {
		case t.close && t.name == parent:
			p.pos = t.end
			return nil
		case t.close:
			return p.errorf(t.start, "unexpected {{/%s}}, want {{/%s}}", t.name, parent)
		case t.name != want:
			return p.errorf(t.start, "unexpected {{%s}} in {{%s}}, want {{%s}}", t.name, parent, want)
		}
		p.pos = t.end
		if err := fn(t); err != nil {
			return err
		}
	}
}

func (p *parser) table() (Node, error) {
	var tbl Table
	err := p.children("table", "row", func(t tag) error {
		if err := p.noArgs(t); err != nil {
			return err
		}
		var row Row
		err := p.children("row", "cell", func(t tag) error {
			al, err := ParseAlignment(t.args)
			if err != nil {
				return p.errorf(t.start, "%s", errors.UserMessage(err))
			}
			children, err := p.nodes("cell")
			if err != nil {
				return err
			}
			row = append(row, Cell{Align: al, Children: children})
			return nil
		})
		tbl.Rows = append(tbl.Rows, row)
		return err
	})
	return tbl, err
}

func (p *parser) canvas() (Node, error) {
	var cv Canvas
	err := p.children("canvas", "layer", func(t tag) error {
		xy, err := p.ints(t, 2)
		if err != nil {
			return err
		}
		children, err := p.nodes("layer")
		if err != nil {
			return err
		}
		cv.Layers = append(cv.Layers, Layer{X: xy[0], Y: xy[1], Children: children})
		return nil
	})
	return cv, err
}

func (p *parser) noArgs(t tag) error {
	if t.args != "" {
		return p.errorf(t.start, "{{%s}} takes no arguments", t.name)
	}
	return nil
}

// ints parses exactly n space-separated non-negative integers from t.args.
func (p *parser) ints(t tag, n int) ([]int, error) {
	fields := strings.Split(t.args, " ")
	if len(fields) != n {
		return nil, p.errorf(t.start, "{{%s}} needs %d numeric argument(s)", t.name, n)
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := parseUint(f)
		if err != nil {
			return nil, p.errorf(t.start, "{{%s}}: %v", t.name, err)
		}
		out[i] = v
	}
	return out, nil
}

// MaxArg is the largest numeric tag argument: widths, layer offsets and
// player indices.
const MaxArg = 1 << 16

func parseUint(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	v, err := strconv.Atoi(s)
	if err != nil || v > MaxArg {
		return 0, fmt.Errorf("number %s exceeds %d", s, MaxArg)
	}
	return v, nil
}

// parseCol parses color tag arguments: a base color followed by optional
// "| mono" and "| inv" transforms. The base is "player(N)" or anything
// color.Parse accepts.
func parseCol(args string) (Col, error) {
	parts := strings.Split(args, "|")
	base := strings.TrimSpace(parts[0])
	var c Col
	if inner, ok := strings.CutPrefix(base, "player("); ok && strings.HasSuffix(inner, ")") {
		i, err := parseUint(strings.TrimSuffix(inner, ")"))
		if err != nil {
			return Col{}, err
		}
		c = PlayerCol(i)
	} else {
		rgb, err := color.Parse(base)
		if err != nil {
			return Col{}, fmt.Errorf("invalid color %q", base)
		}
		c = Lit(rgb)
	}
	for _, part := range parts[1:] {
		switch strings.TrimSpace(part) {
		case "mono":
			c.Transform = append(c.Transform, TransMono)
		case "inv":
			c.Transform = append(c.Transform, TransInv)
		default:
			return Col{}, fmt.Errorf("invalid color transform %q", strings.TrimSpace(part))
		}
	}
	return c, nil
}

// legacyColor resolves the name argument of the old {{c NAME}} tag. Unknown
// names fall back to black.
func legacyColor(name string) color.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "magenta" {
		return color.Purple
	}
	if c, ok := color.Named(name); ok {
		return c
	}
	return color.Black
}
