package cmd

import (
	"github.com/theirongolddev/periodtrack/internal/tracker"

	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show the next period and upcoming cycle schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, reportOptions{Sections: tracker.SectionNext | tracker.SectionForecast | tracker.SectionDisclaimer})
	},
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List each day of the next predicted period",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, reportOptions{Sections: tracker.SectionNext | tracker.SectionDays | tracker.SectionDisclaimer})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged period start dates, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReport(cmd, reportOptions{Sections: tracker.SectionHistory})
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd, daysCmd, historyCmd)
}
