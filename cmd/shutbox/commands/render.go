package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the shell expression for the descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Render(cmd.Context(), configPath(cmd), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "shell.nix", `Output file ("-" for stdout)`)

	return cmd
}
