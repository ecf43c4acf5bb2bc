package cmd

import (
	"fmt"

	"github.com/theirongolddev/periodtrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Backend:    %s\n", cfg.General.Backend)
	fmt.Fprintf(out, "    Data file:  %s\n", cfg.DataFile())
	if cfg.General.LogLevel != "" {
		fmt.Fprintf(out, "    Log level:  %s\n", cfg.General.LogLevel)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Cycle]")
	fmt.Fprintf(out, "    Cycle length:   %d days\n", cfg.Cycle.CycleLength)
	fmt.Fprintf(out, "    Period length:  %d days\n", cfg.Cycle.PeriodLength)
	fmt.Fprintf(out, "    Forecast count: %d\n", cfg.Cycle.ForecastCount)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `periodtrack setup` to reconfigure.")
	return nil
}
