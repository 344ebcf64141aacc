package markup

import (
	"fmt"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/errors"
)

// Node is an element of a markup document. The set of implementations is
// closed: Text, Bold, Fg, Bg, Player, Group, Table, Align, Indent and Canvas.
type Node interface {
	markupNode()
}

// Text is literal content. It may contain newlines.
type Text string

// Bold renders its children in bold.
type Bold struct {
	Children []Node
}

// Fg sets the foreground color of its children.
type Fg struct {
	Color    Col
	Children []Node
}

// Bg sets the background color of its children.
type Bg struct {
	Color    Col
	Children []Node
}

// Player is a reference to a player by roster index. It renders as the
// player's name in the player's color.
type Player int

// Group is a transparent container that flattens into its parent.
type Group struct {
	Children []Node
}

// Table lays out rows of cells in aligned columns.
type Table struct {
	Rows []Row
}

// Align pads every line of its children to Width.
type Align struct {
	Align    Alignment
	Width    int
	Children []Node
}

// Indent prefixes every line of its children with Width spaces.
type Indent struct {
	Width    int
	Children []Node
}

// Canvas composites layers at absolute positions. Later layers are drawn on
// top of earlier ones.
type Canvas struct {
	Layers []Layer
}

func (Text) markupNode()   {}
func (Bold) markupNode()   {}
func (Fg) markupNode()     {}
func (Bg) markupNode()     {}
func (Player) markupNode() {}
func (Group) markupNode()  {}
func (Table) markupNode()  {}
func (Align) markupNode()  {}
func (Indent) markupNode() {}
func (Canvas) markupNode() {}

// Row is a table row.
type Row []Cell

// Cell is a table cell with its own alignment.
type Cell struct {
	Align    Alignment
	Children []Node
}

// Layer is a canvas layer placed with its top-left corner at (X, Y).
type Layer struct {
	X, Y     int
	Children []Node
}

// Alignment is the horizontal alignment of a line within a width.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)

var alignNames = [...]string{Left: "left", Center: "center", Right: "right"}

func (a Alignment) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// ParseAlignment parses "left", "center" or "right".
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignNames {
		if s == name {
			return Alignment(i), nil
		}
	}
	return Left, errors.New(errors.ErrCodeInvalidMarkup, "invalid align %q, must be one of left, center, right", s)
}

// ColKind discriminates literal colors from player references.
type ColKind uint8

const (
	ColLiteral ColKind = iota
	ColPlayer
)

// ColTrans is a color transform applied at resolution time.
type ColTrans uint8

const (
	TransMono ColTrans = iota
	TransInv
)

func (t ColTrans) String() string {
	if t == TransInv {
		return "inv"
	}
	return "mono"
}

// Col is a color reference: either a literal color or a player index, plus
// transforms applied left to right once the base color is known.
type Col struct {
	Kind      ColKind
	RGB       color.Color
	Player    int
	Transform []ColTrans
}

// Lit returns a reference to a literal color.
func Lit(c color.Color) Col {
	return Col{Kind: ColLiteral, RGB: c}
}

// PlayerCol returns a reference to the color of player p.
func PlayerCol(p int) Col {
	return Col{Kind: ColPlayer, Player: p}
}

// Inv returns a copy of c with an inversion appended.
func (c Col) Inv() Col {
	return c.with(TransInv)
}

// Mono returns a copy of c with a monochrome reduction appended.
func (c Col) Mono() Col {
	return c.with(TransMono)
}

func (c Col) with(t ColTrans) Col {
	tr := make([]ColTrans, len(c.Transform), len(c.Transform)+1)
	copy(tr, c.Transform)
	c.Transform = append(tr, t)
	return c
}

// Resolve returns the concrete color, using playerColor to look up player
// references.
func (c Col) Resolve(playerColor func(int) color.Color) color.Color {
	base := c.RGB
	if c.Kind == ColPlayer {
		base = playerColor(c.Player)
	}
	for _, t := range c.Transform {
		switch t {
		case TransMono:
			base = base.Mono()
		case TransInv:
			base = base.Inv()
		}
	}
	return base
}

// Args returns the tag argument form of c, e.g. "player(2) | inv | mono".
func (c Col) Args() string {
	var s string
	if c.Kind == ColPlayer {
		s = fmt.Sprintf("player(%d)", c.Player)
	} else {
		s = fmt.Sprintf("rgb(%d,%d,%d)", c.RGB.R, c.RGB.G, c.RGB.B)
	}
	for _, t := range c.Transform {
		s += " | " + t.String()
	}
	return s
}
