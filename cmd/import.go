package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/periodtrack/internal/cli"
	"github.com/theirongolddev/periodtrack/internal/config"
	"github.com/theirongolddev/periodtrack/internal/history"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Merge start dates from another history file",
	Long: "Merge start dates from a CSV file (\"Start Date\" header) or a periodtrack SQLite\n" +
		"database into the configured history. Dates already logged are skipped.\n" +
		"Files ending in .db or .sqlite are read as SQLite.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	src := args[0]
	srcCfg := cfg
	srcCfg.General.DataFile = src
	srcCfg.General.Backend = backendFor(src)

	if filepath.Clean(src) == filepath.Clean(cfg.DataFile()) {
		return fmt.Errorf("%s is already the configured history", src)
	}
	// The stores treat a missing file as empty history, and SQLite would
	// create one, so a mistyped path has to fail here.
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	srcStore, closeSrc, err := openStore(srcCfg)
	if err != nil {
		return err
	}
	defer closeLogged("import source", closeSrc)

	incoming, err := srcStore.Load()
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	dst, closeDst, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeLogged("store", closeDst)

	current, err := dst.Load()
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.DataFile(), err)
	}

	merged, added := history.Merge(current, incoming)
	out := cmd.OutOrStdout()
	if added == 0 {
		fmt.Fprintln(out, cli.RenderInfo(fmt.Sprintf("No new dates in %s (%d already logged).", src, len(incoming))))
		return nil
	}

	if err := dst.Persist(merged); err != nil {
		return err
	}
	fmt.Fprintln(out, cli.RenderSuccess(fmt.Sprintf("Imported %d of %d dates from %s.", added, len(incoming), src)))
	return nil
}

func backendFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return config.BackendSQLite
	}
	return config.BackendCSV
}
