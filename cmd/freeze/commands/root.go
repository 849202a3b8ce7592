// Package commands implements the CLI commands for freeze.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/freeze/internal/app"
	"go.trai.ch/freeze/internal/build"
	"go.trai.ch/freeze/internal/core/domain"
)

// CLI represents the command line interface for freeze.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "freeze",
		Short:         "Package the reconciliation GUI into a single Windows executable",
		Long:          "Checks for a Python interpreter, installs the packaging dependencies, runs PyInstaller and verifies the executable.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.String(),
		RunE:          c.runBuild,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to configuration file")
	rootCmd.PersistentFlags().Bool("no-pause", false, "Exit without waiting for Enter")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show diagnostic output such as the commands being run")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		c.app.SetVerbose(verbose)
		return nil
	}

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newLogCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
