package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/markup/pkg/errors"
	"github.com/matzehuels/markup/pkg/pipeline"
)

// checkCommand creates the check command, which validates documents and
// an optional roster without rendering.
func (c *CLI) checkCommand() *cobra.Command {
	var roster string

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate markup documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinArg}
			}
			return c.runCheck(cmd.Context(), args, roster)
		},
	}

	cmd.Flags().StringVarP(&roster, "roster", "r", "", "also validate this TOML roster file")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, inputs []string, roster string) error {
	failed := 0
	if roster != "" {
		players, err := loadRoster(roster)
		if err != nil {
			printError("%s: %s", roster, errors.UserMessage(err))
			failed++
		} else {
			printSuccess("%s (%d players)", roster, len(players))
		}
	}

	for _, input := range inputs {
		n, err := c.checkOne(ctx, input)
		if err != nil {
			printError("%s: %v", displayName(input), err)
			failed++
			continue
		}
		printSuccess("%s (%d nodes)", displayName(input), n)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed validation", failed, len(inputs)+boolInt(roster != ""))
	}
	return nil
}

func (c *CLI) checkOne(ctx context.Context, input string) (int, error) {
	src, err := c.readSource(input)
	if err != nil {
		return 0, err
	}
	nodes, err := pipeline.Parse(ctx, src)
	if err != nil {
		return 0, err
	}
	return pipeline.CountNodes(nodes), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
