package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/markup/pkg/errors"
)

// RSVG converts SVG documents to PNG or PDF with the rsvg-convert tool
// from librsvg. The zero value looks the tool up in PATH and renders PNG at
// the document's own size.
type RSVG struct {
	Path  string  // rsvg-convert executable; empty searches PATH
	Scale float64 // PNG zoom factor; zero means 1
}

// Convert renders svg in format, which is "png" or "pdf".
func (c RSVG) Convert(ctx context.Context, svg []byte, format string) ([]byte, error) {
	args := []string{"-f", format}
	switch format {
	case "png":
		if c.Scale > 0 && c.Scale != 1 {
			args = append(args, "-z", strconv.FormatFloat(c.Scale, 'f', 2, 64))
		}
	case "pdf":
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "rsvg-convert cannot produce %q (valid: png, pdf)", format)
	}

	bin := c.Path
	if bin == "" {
		bin = "rsvg-convert"
	}
	bin, err := exec.LookPath(bin)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s export requires librsvg (brew install librsvg, apt install librsvg2-bin)", format)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if out.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "rsvg-convert produced no %s output", format)
	}
	return out.Bytes(), nil
}
