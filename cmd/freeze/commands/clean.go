package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/freeze/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove packager output, work directory and spec file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath,
				All:        all,
			})
		},
	}

	cmd.Flags().Bool("all", false, "Also remove the build history")

	return cmd
}
