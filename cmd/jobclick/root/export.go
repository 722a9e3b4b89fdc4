package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the raw persisted history as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			raw, found, err := svc.HistoryRepo().Raw(ctx)
			if err != nil {
				return err
			}
			if !found {
				raw = "[]"
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	}

	return cmd
}
