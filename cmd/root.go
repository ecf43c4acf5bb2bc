// Package cmd implements the periodtrack CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/periodtrack/internal/cli"
	"github.com/theirongolddev/periodtrack/internal/config"
	"github.com/theirongolddev/periodtrack/internal/history"
	"github.com/theirongolddev/periodtrack/internal/logger"
	"github.com/theirongolddev/periodtrack/internal/model"
	"github.com/theirongolddev/periodtrack/internal/store"
	"github.com/theirongolddev/periodtrack/internal/tracker"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagDataFile     string
	flagBackend      string
	flagCycleLength  int
	flagPeriodLength int
	flagCount        int
	flagQuiet        bool
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:          "periodtrack",
	Short:        "Period tracker and cycle forecaster",
	Long:         "Log period start dates and forecast upcoming periods from average cycle and period lengths.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagDataFile, "data-file", "f", "", "History file (default from config)")
	pf.StringVar(&flagBackend, "backend", config.BackendCSV, "Storage backend: csv or sqlite")
	pf.IntVarP(&flagCycleLength, "cycle-length", "c", model.DefaultCycleLength, "Average cycle length in days (21-35)")
	pf.IntVarP(&flagPeriodLength, "period-length", "p", model.DefaultPeriodLength, "Average period duration in days (3-7)")
	pf.IntVarP(&flagCount, "count", "n", model.DefaultForecastCount, "Number of cycles to forecast")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Only print results and warnings")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// loadSettings reads the config file and environment, then applies any
// flags the user set explicitly.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-file") {
		cfg.General.DataFile = flagDataFile
	}
	if flags.Changed("backend") {
		cfg.General.Backend = flagBackend
	}
	if flags.Changed("cycle-length") {
		cfg.Cycle.CycleLength = flagCycleLength
	}
	if flags.Changed("period-length") {
		cfg.Cycle.PeriodLength = flagPeriodLength
	}
	if flags.Changed("count") {
		cfg.Cycle.ForecastCount = flagCount
	}

	logger.Init(cfg.General.LogLevel, flagVerbose)
	logger.With("cmd").Debugf("backend=%s data=%s", cfg.General.Backend, cfg.DataFile())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore returns the history store for the configured backend and a
// func that releases it.
func openStore(cfg config.Config) (history.Store, func() error, error) {
	path := cfg.DataFile()
	if cfg.General.Backend == config.BackendSQLite {
		db, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening history database: %w", err)
		}
		return db, db.Close, nil
	}
	return history.NewCSVStore(path), func() error { return nil }, nil
}

// openTracker is the shared loading path used by the reporting commands.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, config.Config, func(), error) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return nil, cfg, nil, err
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, cfg, nil, err
	}
	release := func() { closeLogged("store", closeStore) }

	tr := tracker.New(st, newPresenter(cmd))
	if err := tr.Load(); err != nil {
		release()
		return nil, cfg, nil, fmt.Errorf("loading %s: %w", cfg.DataFile(), err)
	}
	return tr, cfg, release, nil
}

// newPresenter returns a presenter on the command's output. Prompts fall
// back to accessible mode when stdout is not a terminal; --quiet drops
// informational lines.
func newPresenter(cmd *cobra.Command) *cli.Presenter {
	p := cli.NewPresenter(cmd.OutOrStdout())
	p.Accessible = !isTerminal(os.Stdout)
	p.Quiet = flagQuiet
	return p
}

// closeLogged calls closeFn and logs a failure. Meant for defer.
func closeLogged(what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.With("cmd").WithError(err).Warnf("closing %s", what)
	}
}

type reportOptions struct {
	Log      *model.Date
	Sections tracker.Section
	Banner   bool // title box and settings line before the report
}

// runReport loads the history, optionally logs a date, and renders sections.
func runReport(cmd *cobra.Command, opts reportOptions) error {
	tr, cfg, release, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer release()

	if opts.Banner && !flagQuiet {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTitle("PERIODTRACK  Cycle Forecast"))
		fmt.Fprintln(out, cli.RenderMuted(fmt.Sprintf("%s · cycle %s · period %s",
			cfg.DataFile(), cli.FormatDays(cfg.Cycle.CycleLength), cli.FormatDays(cfg.Cycle.PeriodLength))))
	}

	return tr.Run(tracker.RunOptions{
		Log:      opts.Log,
		Config:   cfg.CycleConfig(),
		Count:    cfg.Cycle.ForecastCount,
		Sections: opts.Sections,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
