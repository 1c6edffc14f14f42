package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the shell expression whenever the descriptor changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), configPath(cmd), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "shell.nix", "Output file")

	return cmd
}
