package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/markup/pkg/core/render"
	pkgio "github.com/matzehuels/markup/pkg/io"
	"github.com/matzehuels/markup/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file (single format) or base path (multiple)
	formats string  // comma-separated output formats
	roster  string  // TOML roster file
	noCache bool    // bypass the render cache
	refresh bool    // re-render even if cached
	padding int     // PNG border in pixels
	scale   float64 // PNG scale factor
	stats   bool    // print render statistics
}

// renderCommand creates the render command.
//
// With a single format and no --output the result is written to stdout.
// With several formats each is written to <base><ext>, where base is
// --output or the input file name without its extension.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a markup document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), argOrStdin(args), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): ansi (default), html, plain, json, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.roster, "roster", "r", "", "TOML roster file naming and coloring players")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached result exists")
	cmd.Flags().IntVar(&opts.padding, "padding", 0, "PNG border in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print render statistics")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}
	players, err := loadRoster(opts.roster)
	if err != nil {
		return err
	}
	src, err := c.readSource(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Source:  src,
		Players: players,
		Formats: formats,
		PNG:     render.PNGOptions{Padding: opts.padding, Scale: opts.scale},
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}

	if len(formats) == 1 && opts.output == "" {
		if opts.stats {
			logger.Info("render stats",
				"nodes", result.Stats.NodeCount,
				"lines", result.Stats.LineCount,
				"width", result.Stats.Width,
				"cached", result.CacheInfo.RenderHit)
		}
		_, err := stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	base := basePath(opts.output, input)
	for _, f := range formats {
		path := opts.output
		if len(formats) > 1 || path == "" {
			path = base + f.Extension()
		}
		if err := pkgio.ExportArtifact(path, result.Artifacts[f]); err != nil {
			return err
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %s", displayName(input)))

	if opts.stats {
		printStats(result.Stats, result.CacheInfo.RenderHit)
	}
	return nil
}

// basePath derives the base output path. Without an output it strips the
// extension from input; known format extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		if input == stdinArg {
			return "out"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	for _, f := range render.Formats {
		if ext == f.Extension() {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

func displayName(input string) string {
	if input == stdinArg {
		return "stdin"
	}
	return input
}
