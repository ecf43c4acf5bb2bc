package cmd

import (
	"errors"
	"os"

	"github.com/theirongolddev/periodtrack/internal/model"
	"github.com/theirongolddev/periodtrack/internal/tracker"

	"github.com/spf13/cobra"
)

var flagPrompt bool

var logCmd = &cobra.Command{
	Use:   "log [YYYY-MM-DD]",
	Short: "Log the first day of a period (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().BoolVar(&flagPrompt, "prompt", false, "Ask for the date interactively")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	d, err := logDate(cmd, args)
	if err != nil {
		return err
	}
	return runReport(cmd, reportOptions{Log: &d, Sections: tracker.SectionNext})
}

func logDate(cmd *cobra.Command, args []string) (model.Date, error) {
	if len(args) == 1 {
		if flagPrompt {
			return model.Date{}, errors.New("pass a date or --prompt, not both")
		}
		return model.ParseDate(args[0])
	}
	if !flagPrompt {
		return model.Today(), nil
	}
	if !isTerminal(os.Stdin) {
		return model.Date{}, errors.New("--prompt needs an interactive terminal")
	}
	return newPresenter(cmd).PromptDate(model.Today())
}
