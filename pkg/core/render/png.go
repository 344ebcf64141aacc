package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/markup/pkg/core/color"
	"github.com/matzehuels/markup/pkg/core/styled"
)

// PNGOptions configures raster output.
type PNGOptions struct {
	Padding int // Border around the text in pixels
	Scale   float64
}

const (
	cellWidth  = 7
	cellHeight = 13
	baseline   = 11
)

// PNG draws nodes on a character grid using a 7x13 bitmap font. Every rune
// occupies one cell; unset colors use the default style.
func PNG(nodes []styled.Node, opts PNGOptions) ([]byte, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	lines := Spans(nodes)
	cols := styled.Width(styled.ToLines(nodes))

	pad := max(opts.Padding, 0)
	w := int(float64(max(cols, 1)*cellWidth+2*pad) * opts.Scale)
	h := int(float64(len(lines)*cellHeight+2*pad) * opts.Scale)
	dc := gg.NewContext(w, h)
	dc.Scale(opts.Scale, opts.Scale)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	for row, line := range lines {
		y := float64(pad + row*cellHeight)
		col := 0
		for _, s := range line {
			st := SpanStyle(s)
			runes := []rune(s.Text)
			x := float64(pad + col*cellWidth)

			dc.SetColor(st.Bg)
			dc.DrawRectangle(x, y, float64(len(runes)*cellWidth), cellHeight)
			dc.Fill()

			dc.SetColor(st.Fg)
			for i, r := range runes {
				cx := x + float64(i*cellWidth)
				dc.DrawString(string(r), cx, y+baseline)
				if st.Bold {
					dc.DrawString(string(r), cx+1, y+baseline)
				}
			}
			col += len(runes)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
