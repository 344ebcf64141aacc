package color

import (
	"github.com/charmbracelet/x/ansi"
)

// Style is the full terminal styling state at a point in a document.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// DefaultStyle is black text on a white background, not bold.
func DefaultStyle() Style {
	return Style{Fg: Black, Bg: White}
}

// TrueColor converts c into a 24-bit terminal color.
func (c Color) TrueColor() ansi.TrueColor {
	return ansi.TrueColor(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// ANSI returns a single SGR sequence setting intensity, foreground and
// background to the values in s.
func (s Style) ANSI() string {
	seq := ansi.Style{}
	if s.Bold {
		seq = seq.Bold()
	} else {
		seq = seq.NormalIntensity()
	}
	return seq.ForegroundColor(s.Fg.TrueColor()).BackgroundColor(s.Bg.TrueColor()).String()
}
