package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/winston6800/Jobclick/internal/counter"
	"github.com/winston6800/Jobclick/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Set today's count back to zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today := counter.Today(time.Now())
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Reset today's count (%s) to 0? [y/N] ", today)
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "y", "yes":
				default:
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
					return nil
				}
			}

			res, err := svc.ResetToday(ctx, today)
			if err != nil {
				return err
			}
			warnIf(cmd, res.Warning)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Warn.Render(ui.IconSweep+" Reset"),
				res.Date,
				ui.Muted.Render(fmt.Sprintf("(was %d)", res.Before)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
