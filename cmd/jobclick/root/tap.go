package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/winston6800/Jobclick/internal/counter"
	"github.com/winston6800/Jobclick/internal/ui"
)

func newTapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Count one application sent today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Tap(ctx, counter.Today(time.Now()))
			if err != nil {
				return err
			}
			warnIf(cmd, res.Warning)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconSend+" +1"),
				ui.LabelValue("Today", res.Count))
			return nil
		},
	}

	return cmd
}
