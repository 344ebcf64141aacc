package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/markup/pkg/buildinfo"
	"github.com/matzehuels/markup/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "markup renders styled, player-aware text layouts",
		Long:         `markup is a CLI tool for rendering styled text documents (bold, colors, player names, tables and layered canvases) to terminals, HTML and images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.colorsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
