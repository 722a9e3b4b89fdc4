package root

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winston6800/Jobclick/internal/counter"
	"github.com/winston6800/Jobclick/internal/storage"
	"github.com/winston6800/Jobclick/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*counter.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return counter.NewService(db), cleanup, nil
}

// warnIf reports a corrupt-state warning once and moves on; a discarded
// history is not a command failure.
func warnIf(cmd *cobra.Command, warning string) {
	if warning == "" {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+warning))
}
