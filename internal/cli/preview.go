package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// previewCommand creates the preview command, an interactive pager over a
// rendered document.
func (c *CLI) previewCommand() *cobra.Command {
	var roster string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Page through a rendered markup document",
		Long: `Page through a rendered markup document.

Keys: ↑/↓ scroll, tab switches between the rendered document, its canonical
source and its node tree, f cycles the focused player (other players are
drawn in grey), r reloads the file, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := loadRoster(roster)
			if err != nil {
				return err
			}
			path := args[0]
			if _, err := c.readSource(path); err != nil {
				return err
			}

			m := NewPreviewModel(path, players, func() (string, error) { return c.readSource(path) })
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&roster, "roster", "r", "", "TOML roster file naming and coloring players")

	return cmd
}
