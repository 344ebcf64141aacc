// Package color provides the RGB color model used by markup documents.
//
// Colors are immutable values. Besides literal construction they can be
// looked up by name ([Named]), parsed from "#rrggbb" or "rgb(r,g,b)"
// notation ([Parse]) or assigned to players by index ([PlayerColor]).
//
// Two unary transforms are defined on colors:
//
//   - [Color.Mono] maps a color to black or white depending on its brightness
//   - [Color.Inv] inverts every channel
//
// The named table and the player palette are read-only package state and are
// safe for concurrent use.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/markup/pkg/errors"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Mono returns White if the color is bright, Black otherwise.
// Each channel is divided by three before summing so the result never
// overflows a byte-sized accumulator.
func (c Color) Mono() Color {
	if int(c.R)/3+int(c.G)/3+int(c.B)/3 >= 128 {
		return White
	}
	return Black
}

// Inv returns the channel-wise inverse of the color.
func (c Color) Inv() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Hex returns the color as a lower-case "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color so colors can be handed to terminal and
// styling libraries directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// colorful converts c into the go-colorful representation.
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

var rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// ParseHex parses a color in "#rrggbb" notation. Upper-case digits are accepted.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, errors.New(errors.ErrCodeInvalidColor,
			"expected input in the format of \"#aabbcc\", got %q", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err,
			"expected input in the format of \"#aabbcc\", got %q", s)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ParseRGB parses a color in "rgb(r,g,b)" notation with decimal channels.
func ParseRGB(s string) (Color, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, errors.New(errors.ErrCodeInvalidColor,
			"expected input in the format of \"rgb(0,128,255)\", got %q", s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 10, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err,
				"channel %d out of range in %q", i, s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Parse resolves a color from a known name, a hex code or an rgb() triple,
// in that order.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := Named(s); ok {
		return c, nil
	}
	if c, err := ParseHex(s); err == nil {
		return c, nil
	}
	if c, err := ParseRGB(s); err == nil {
		return c, nil
	}
	return Color{}, errors.New(errors.ErrCodeInvalidColor,
		"could not find color %q, please supply a known color name, a hex code in the format \"#aabbcc\" or RGB in the format \"rgb(0,128,255)\"", s)
}
