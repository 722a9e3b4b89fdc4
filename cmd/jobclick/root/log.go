package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/winston6800/Jobclick/internal/counter"
	"github.com/winston6800/Jobclick/internal/ui"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List the day-by-day history, newest first",
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

			records := snap.History
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCal, "History"))
			for _, rec := range records {
				marker := "  "
				if rec.Date == snap.Today {
					marker = ui.Key.Render("> ")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s\n", marker, rec.Date, ui.CountText(rec.Count))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many days (0 = all)")

	return cmd
}
