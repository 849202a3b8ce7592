package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/freeze/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the executable (default command)",
		Args:  cobra.NoArgs,
		RunE:  c.runBuild,
	}
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	noPause, err := cmd.Flags().GetBool("no-pause")
	if err != nil {
		return err
	}

	_, err = c.app.Build(cmd.Context(), app.BuildOptions{
		ConfigPath: configPath,
		NoPause:    noPause,
	})
	return err
}
