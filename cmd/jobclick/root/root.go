package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winston6800/Jobclick/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "jobclick",
	Short:         "Jobclick — daily job application counter",
	Long:          "Jobclick is a local-first CLI/TUI counter for job applications: one count per calendar day, with totals, a trailing 7-day sum, and your best day.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTapCmd(),
		newResetCmd(),
		newStatusCmd(),
		newLogCmd(),
		newExportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
