package cmd

import (
	"github.com/theirongolddev/periodtrack/internal/tracker"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Next period, forecast, upcoming period days, and history",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return runReport(cmd, reportOptions{Sections: tracker.SectionAll, Banner: true})
}
