package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/errors"
	pkgio "github.com/matzehuels/markup/pkg/io"
	"github.com/matzehuels/markup/pkg/pipeline"
)

type fmtOpts struct {
	write bool // rewrite the file in place
	check bool // fail if the file is not canonical
}

// fmtCommand creates the fmt command, which rewrites a document in
// canonical notation.
func (c *CLI) fmtCommand() *cobra.Command {
	var opts fmtOpts

	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Rewrite a markup document in canonical notation",
		Long: `Rewrite a markup document in canonical notation.

Colors are written as rgb(r,g,b), legacy {{c NAME}} tags become {{fg ...}}
and adjacent text is merged. With --check the command fails if the input is
not already canonical.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFmt(cmd.Context(), cmd.OutOrStdout(), argOrStdin(args), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write result to the source file instead of stdout")
	cmd.Flags().BoolVar(&opts.check, "check", false, "exit with an error if the input is not canonical")

	return cmd
}

func (c *CLI) runFmt(ctx context.Context, stdout io.Writer, input string, opts fmtOpts) error {
	src, err := c.readSource(input)
	if err != nil {
		return err
	}
	canonical, err := canonicalize(ctx, src)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(input), err)
	}

	switch {
	case opts.check:
		if canonical != src {
			return errors.New(errors.ErrCodeInvalidMarkup, "%s is not canonically formatted", displayName(input))
		}
		return nil
	case opts.write && input != stdinArg:
		if canonical == src {
			return nil
		}
		return pkgio.ExportArtifact(input, []byte(canonical))
	}
	_, err = io.WriteString(stdout, canonical)
	return err
}

// canonicalize parses src and formats it again, verifying that the
// canonical form parses back to the same document.
func canonicalize(ctx context.Context, src string) (string, error) {
	nodes, err := pipeline.Parse(ctx, src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := pkgio.WriteMarkup(&buf, nodes); err != nil {
		return "", err
	}
	again, err := pipeline.Parse(ctx, buf.String())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "canonical form does not parse")
	}
	if markup.Format(again) != buf.String() {
		return "", errors.New(errors.ErrCodeInternal, "canonical form is not stable")
	}
	return buf.String(), nil
}
