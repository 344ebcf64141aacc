package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/markup/pkg/core/color"
)

// colorsCommand creates the colors command, which lists the named colors
// and the player palette.
func (c *CLI) colorsCommand() *cobra.Command {
	var playersOnly bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List named colors and the player palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeColors(cmd.OutOrStdout(), playersOnly)
		},
	}

	cmd.Flags().BoolVar(&playersOnly, "players", false, "only list the player palette")

	return cmd
}

func writeColors(w io.Writer, playersOnly bool) error {
	var rows [][]string
	if !playersOnly {
		for _, nc := range color.All() {
			rows = append(rows, colorRow(nc.Name, nc.Color))
		}
	}
	for i, pc := range color.PlayerColors() {
		rows = append(rows, colorRow("player("+strconv.Itoa(i)+")", pc))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Hex", "RGB", "Swatch").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func colorRow(name string, c color.Color) []string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.Mono().Hex())).
		Render(" Aa ")
	return []string{name, c.Hex(), fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B), swatch}
}
