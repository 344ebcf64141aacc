// Package render turns resolved documents into output formats.
//
// # Overview
//
// Every renderer walks a tree of [styled.Node] values produced by
// layout.Resolve:
//
//   - [ANSI]: true-color terminal escape sequences
//   - [HTML]: inline-styled <span> elements
//   - [Plain]: text only
//   - [JSON]: lines of styled spans, for API payloads
//   - [PNG]: a raster image with one fixed-size cell per character
//
// [Render] selects a renderer by [Format] name.
//
// # Styling State
//
// The ANSI renderer tracks the full style (foreground, background, bold)
// and re-emits it in full on entry to and exit from every styled node, so
// output stays correct when it is cut at any line boundary. Minimal escape
// sequences are not a goal.
//
// # Debug Exports
//
// [RSVG] converts SVG documents (such as markup.RenderSVG output) to PNG or
// PDF using rsvg-convert.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/markup/pkg/core/styled"
	"github.com/matzehuels/markup/pkg/errors"
)

// Format names an output format.
type Format string

const (
	FormatANSI  Format = "ansi"
	FormatHTML  Format = "html"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatPNG   Format = "png"
)

// Formats lists the supported formats.
var Formats = []Format{FormatANSI, FormatHTML, FormatPlain, FormatJSON, FormatPNG}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (valid: %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatANSI:
		return ".ans"
	case FormatPlain:
		return ".txt"
	}
	return "." + string(f)
}

// Render renders nodes in format f.
func Render(nodes []styled.Node, f Format) ([]byte, error) {
	switch f {
	case FormatANSI:
		return []byte(ANSI(nodes)), nil
	case FormatHTML:
		return []byte(HTML(nodes)), nil
	case FormatPlain:
		return []byte(Plain(nodes)), nil
	case FormatJSON:
		return JSON(nodes)
	case FormatPNG:
		return PNG(nodes, PNGOptions{})
	}
	return nil, fmt.Errorf("render: %w", errors.New(errors.ErrCodeUnsupported, "format %q", f))
}
