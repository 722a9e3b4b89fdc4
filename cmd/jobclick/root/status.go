package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/winston6800/Jobclick/internal/counter"
	"github.com/winston6800/Jobclick/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's count and aggregate stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Snapshot(ctx, counter.Today(time.Now()))
			if err != nil {
				return err
			}
			warnIf(cmd, snap.Warning)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Jobclick Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Date", snap.Today))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", ui.CountText(counter.Count(snap.History, snap.Today))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconChart+" Stats"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", ui.Key.Render("Total:"), snap.Stats.Total)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s %d\n", ui.Key.Render("Last 7 days:"), snap.Stats.Last7Days)
			if snap.Stats.Best.Date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render("Best day:"),
					snap.Stats.Best.Date,
					ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconTrophy, snap.Stats.Best.Count)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", ui.Key.Render("Best day:"), ui.Muted.Render("(none yet)"))
			}

			savedAt, err := svc.HistoryRepo().LastSavedAt(ctx)
			if err != nil {
				return err
			}
			if !savedAt.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Last saved "+savedAt.Local().Format("2006-01-02 15:04:05")))
			}
			return nil
		},
	}

	return cmd
}
