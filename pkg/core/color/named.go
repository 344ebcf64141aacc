package color

import "math"

// Material palette colors available by name.
var (
	Red        = Color{R: 211, G: 47, B: 47}
	Pink       = Color{R: 194, G: 24, B: 91}
	Purple     = Color{R: 123, G: 31, B: 162}
	DeepPurple = Color{R: 81, G: 45, B: 168}
	Indigo     = Color{R: 48, G: 63, B: 159}
	Blue       = Color{R: 25, G: 118, B: 210}
	LightBlue  = Color{R: 2, G: 136, B: 209}
	Cyan       = Color{R: 0, G: 151, B: 167}
	Teal       = Color{R: 0, G: 121, B: 107}
	Green      = Color{R: 56, G: 142, B: 60}
	LightGreen = Color{R: 104, G: 159, B: 56}
	Lime       = Color{R: 175, G: 180, B: 43}
	Yellow     = Color{R: 251, G: 192, B: 45}
	Amber      = Color{R: 255, G: 160, B: 0}
	Orange     = Color{R: 245, G: 124, B: 0}
	DeepOrange = Color{R: 230, G: 74, B: 25}
	Brown      = Color{R: 93, G: 64, B: 55}
	Grey       = Color{R: 97, G: 97, B: 97}
	BlueGrey   = Color{R: 69, G: 90, B: 100}
	White      = Color{R: 255, G: 255, B: 255}
	Black      = Color{R: 0, G: 0, B: 0}
)

// NamedColor pairs a color with its lookup name.
type NamedColor struct {
	Name  string
	Color Color
}

// names is ordered so listings are stable.
var names = []NamedColor{
	{"red", Red},
	{"pink", Pink},
	{"purple", Purple},
	{"deep_purple", DeepPurple},
	{"indigo", Indigo},
	{"blue", Blue},
	{"light_blue", LightBlue},
	{"cyan", Cyan},
	{"teal", Teal},
	{"green", Green},
	{"light_green", LightGreen},
	{"lime", Lime},
	{"yellow", Yellow},
	{"amber", Amber},
	{"orange", Orange},
	{"deep_orange", DeepOrange},
	{"brown", Brown},
	{"grey", Grey},
	{"blue_grey", BlueGrey},
	{"white", White},
	{"black", Black},
}

var byName = func() map[string]Color {
	m := make(map[string]Color, len(names))
	for _, n := range names {
		m[n.Name] = n.Color
	}
	return m
}()

// Named looks up a color by its exact lower-case name.
func Named(name string) (Color, bool) {
	c, ok := byName[name]
	return c, ok
}

// All returns every named color in palette order.
func All() []NamedColor {
	out := make([]NamedColor, len(names))
	copy(out, names)
	return out
}

// Nearest returns the named color perceptually closest to c (CIE Lab distance).
func Nearest(c Color) NamedColor {
	target := c.colorful()
	best := names[0]
	bestDist := math.Inf(1)
	for _, n := range names {
		if d := target.DistanceLab(n.Color.colorful()); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// playerColors is the default palette assigned to players without an
// explicit color.
var playerColors = []Color{Green, Red, Blue, Amber, Purple, Brown, BlueGrey}

// PlayerColors returns the default player palette.
func PlayerColors() []Color {
	out := make([]Color, len(playerColors))
	copy(out, playerColors)
	return out
}

// PlayerColor returns the default color for player index p. Indices wrap
// around the palette; negative indices are treated as zero.
func PlayerColor(p int) Color {
	if p < 0 {
		p = 0
	}
	return playerColors[p%len(playerColors)]
}
