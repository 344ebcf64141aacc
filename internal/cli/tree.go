package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/markup/pkg/io"
	"github.com/matzehuels/markup/pkg/pipeline"
)

type treeOpts struct {
	format  string
	output  string
	noCache bool
}

// treeCommand creates the tree command, which draws the node tree of a
// document with Graphviz.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{format: pipeline.TreeDOT}

	cmd := &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Show the node tree of a markup document",
		Long: `Show the node tree of a markup document.

The tree is printed as Graphviz DOT by default. SVG is rendered with the
embedded Graphviz; PNG and PDF additionally require rsvg-convert.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), cmd.OutOrStdout(), argOrStdin(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png, pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, stdout io.Writer, input string, opts treeOpts) error {
	src, err := c.readSource(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if opts.output != "" && opts.format != pipeline.TreeDOT {
		spinner = newSpinnerWithContext(ctx, "Rendering node tree...")
		spinner.Start()
	}
	data, err := runner.RenderTree(ctx, src, opts.format)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Node tree export failed")
		} else {
			spinner.StopWithSuccess("Rendered node tree")
		}
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := pkgio.ExportArtifact(opts.output, data); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}
