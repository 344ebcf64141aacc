package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/markup/pkg/core/layout"
	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/render"
	"github.com/matzehuels/markup/pkg/core/styled"
	pkgio "github.com/matzehuels/markup/pkg/io"
	"github.com/matzehuels/markup/pkg/observability"
)

// Parse reads a complete markup document. Trailing input is an error.
func Parse(ctx context.Context, src string) ([]markup.Node, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, len(src))
	start := time.Now()

	nodes, err := pkgio.ReadMarkup(strings.NewReader(src))
	hooks.OnParseComplete(ctx, CountNodes(nodes), time.Since(start), err)
	return nodes, err
}

// Resolve expands nodes for players.
func Resolve(ctx context.Context, nodes []markup.Node, players []layout.Player) []styled.Node {
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, len(players))
	start := time.Now()

	out := layout.Resolve(nodes, players)
	hooks.OnResolveComplete(ctx, len(styled.ToLines(out)), time.Since(start))
	return out
}

// Render renders resolved nodes in every format in opts.Formats.
func Render(ctx context.Context, resolved []styled.Node, opts Options) (map[render.Format][]byte, error) {
	hooks := observability.Pipeline()
	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	for _, f := range opts.Formats {
		hooks.OnRenderStart(ctx, string(f))
		start := time.Now()

		data, err := renderFormat(resolved, f, opts)
		hooks.OnRenderComplete(ctx, string(f), len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[f] = data
	}
	return artifacts, nil
}

func renderFormat(resolved []styled.Node, f render.Format, opts Options) ([]byte, error) {
	if f == render.FormatPNG {
		return render.PNG(resolved, opts.PNG)
	}
	return render.Render(resolved, f)
}

// RenderMarkup parses src, resolves it for players and renders it in format
// f, without caching.
func RenderMarkup(src string, players []layout.Player, f render.Format) ([]byte, error) {
	ctx := context.Background()
	opts := Options{Source: src, Players: players, Formats: []render.Format{f}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	nodes, err := Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	artifacts, err := Render(ctx, Resolve(ctx, nodes, players), opts)
	if err != nil {
		return nil, err
	}
	return artifacts[opts.Formats[0]], nil
}

// CountNodes returns the number of nodes in a document, counting nested
// children, table cells and canvas layers.
func CountNodes(nodes []markup.Node) int {
	n := 0
	for _, node := range nodes {
		n++
		switch node := node.(type) {
		case markup.Bold:
			n += CountNodes(node.Children)
		case markup.Fg:
			n += CountNodes(node.Children)
		case markup.Bg:
			n += CountNodes(node.Children)
		case markup.Group:
			n += CountNodes(node.Children)
		case markup.Align:
			n += CountNodes(node.Children)
		case markup.Indent:
			n += CountNodes(node.Children)
		case markup.Table:
			for _, row := range node.Rows {
				for _, cell := range row {
					n += 1 + CountNodes(cell.Children)
				}
			}
		case markup.Canvas:
			for _, l := range node.Layers {
				n += 1 + CountNodes(l.Children)
			}
		}
	}
	return n
}
