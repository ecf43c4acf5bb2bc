package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/periodtrack/internal/cli"
	"github.com/theirongolddev/periodtrack/internal/config"
	"github.com/theirongolddev/periodtrack/internal/model"
	"github.com/theirongolddev/periodtrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// A broken config file is what setup is for; start from defaults then.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.RenderWarning(fmt.Sprintf("Ignoring existing config: %v", err)))
		cfg = config.DefaultConfig()
	}

	dataFile := cfg.General.DataFile
	forecastCount := strconv.Itoa(cfg.Cycle.ForecastCount)

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to periodtrack!").
				Description("Settings are saved to "+config.ConfigPath()+".\nEstimates only; not a medical tool."),
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("CSV file (plain text)", config.BackendCSV),
					huh.NewOption("SQLite database", config.BackendSQLite),
				).
				Value(&cfg.General.Backend),
			huh.NewInput().
				Title("History file").
				Description("Leave empty for the default location").
				Placeholder(cfg.DataFile()).
				Value(&dataFile),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Average cycle length (days)").
				Options(cli.IntOptions(model.MinCycleLength, model.MaxCycleLength)...).
				Value(&cfg.Cycle.CycleLength),
			huh.NewSelect[int]().
				Title("Average period duration (days)").
				Options(cli.IntOptions(model.MinPeriodLength, model.MaxPeriodLength)...).
				Value(&cfg.Cycle.PeriodLength),
			huh.NewInput().
				Title("Cycles to forecast").
				Value(&forecastCount).
				Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	).WithAccessible(!isTerminal(os.Stdin))

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	cfg.General.DataFile = dataFile
	cfg.Cycle.ForecastCount, _ = strconv.Atoi(forecastCount)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderSuccess("Saved to "+config.ConfigPath()))
	fmt.Fprintln(out, "  Run `periodtrack setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 24 {
		return fmt.Errorf("enter a number from 1 to 24")
	}
	return nil
}
