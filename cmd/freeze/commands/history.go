package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List previous builds, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.app.History(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(out, "No builds recorded.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("RUN", "TIME", "OUTCOME", "STALE", "ARTIFACT", "HASH")
			for _, r := range records {
				t.Row(
					r.RunID,
					r.Timestamp.Local().Format(time.DateTime),
					r.Outcome,
					strconv.FormatBool(r.Stale),
					r.Artifact,
					r.ArtifactHash,
				)
			}

			_, _ = fmt.Fprintln(out, t.String())
			return nil
		},
	}
}
