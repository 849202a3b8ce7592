package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/ui/output"
	"go.trai.ch/freeze/internal/ui/style"
)

func (c *CLI) newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [run-id]",
		Short: "Show the recorded steps of a run, the most recent one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var runID string
			if len(args) == 1 {
				runID = args[0]
			}

			log, err := c.app.RunLog(cmd.Context(), runID)
			if err != nil {
				return err
			}

			renderRunLog(cmd.OutOrStdout(), log)
			return nil
		},
	}
}

func renderRunLog(w io.Writer, log domain.RunLog) {
	r := lipgloss.NewRenderer(w)
	if output.NoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	ok := r.NewStyle().Foreground(style.Green)
	failed := r.NewStyle().Foreground(style.Red)
	dim := r.NewStyle().Foreground(style.Slate)

	_, _ = fmt.Fprintln(w, "Run "+log.RunID)
	if len(log.Steps) == 0 {
		_, _ = fmt.Fprintln(w, dim.Render("No steps recorded."))
		return
	}

	for _, s := range log.Steps {
		line := ok.Render(style.Check) + " " + s.Name
		if s.Failed() {
			line = failed.Render(style.Cross) + " " + s.Name
		}
		line += dim.Render(" (" + s.Duration().Round(time.Millisecond).String() + ")")
		if s.Failed() {
			line += ": " + s.Error
		}
		_, _ = fmt.Fprintln(w, line)

		out := strings.TrimRight(s.Output, "\n")
		if out == "" {
			continue
		}
		for _, l := range strings.Split(out, "\n") {
			_, _ = fmt.Fprintln(w, "    "+l)
		}
	}
}
