package cmd

import (
	"errors"
	"os"

	"github.com/theirongolddev/periodtrack/internal/tracker"

	"github.com/spf13/cobra"
)

var flagNoLog bool

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Log a date and pick cycle settings interactively",
	Long:  "Ask for the first day of your latest period, then the average cycle and period lengths, and show the full forecast.",
	Args:  cobra.NoArgs,
	RunE:  runTrack,
}

func init() {
	trackCmd.Flags().BoolVar(&flagNoLog, "no-log", false, "Skip the date prompt and only forecast")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) {
		return errors.New("track needs an interactive terminal; use `periodtrack log` instead")
	}

	tr, cfg, release, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer release()

	return tr.Interactive(tracker.InteractiveOptions{
		Defaults: cfg.CycleConfig(),
		Count:    cfg.Cycle.ForecastCount,
		SkipLog:  flagNoLog,
	})
}
