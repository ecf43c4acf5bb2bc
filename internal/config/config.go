// Package config loads periodtrack settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/periodtrack/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Environment overrides, applied after the config file.
const (
	EnvDataFile = "PERIODTRACK_DATA_FILE"
	EnvBackend  = "PERIODTRACK_BACKEND"
	EnvLogLevel = "PERIODTRACK_LOG_LEVEL"
)

// Config holds all periodtrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Cycle      CycleDefaults    `toml:"cycle"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds storage and logging preferences.
type GeneralConfig struct {
	DataFile string `toml:"data_file,omitempty"`
	Backend  string `toml:"backend"`
	LogLevel string `toml:"log_level,omitempty"`
}

// CycleDefaults are the starting values for cycle settings. Flags and the
// TUI can override them for a single run.
type CycleDefaults struct {
	CycleLength   int `toml:"cycle_length"`
	PeriodLength  int `toml:"period_length"`
	ForecastCount int `toml:"forecast_count"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Backend: BackendCSV,
		},
		Cycle: CycleDefaults{
			CycleLength:   model.DefaultCycleLength,
			PeriodLength:  model.DefaultPeriodLength,
			ForecastCount: model.DefaultForecastCount,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// CycleConfig returns the configured cycle defaults.
func (c Config) CycleConfig() model.CycleConfig {
	return model.CycleConfig{
		CycleLength:  c.Cycle.CycleLength,
		PeriodLength: c.Cycle.PeriodLength,
	}
}

// Validate checks backend and cycle values.
func (c Config) Validate() error {
	switch c.General.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.General.Backend, BackendCSV, BackendSQLite)
	}
	if err := c.CycleConfig().Validate(); err != nil {
		return err
	}
	if c.Cycle.ForecastCount < 1 {
		return fmt.Errorf("%w: forecast_count %d, want at least 1", model.ErrInvalidConfig, c.Cycle.ForecastCount)
	}
	return nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "periodtrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "periodtrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "periodtrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "periodtrack")
}

// DataFile returns the history file path for the configured backend.
func (c Config) DataFile() string {
	if c.General.DataFile != "" {
		return c.General.DataFile
	}
	if c.General.Backend == BackendSQLite {
		return filepath.Join(DataDir(), "period_data.db")
	}
	return filepath.Join(DataDir(), "period_data.csv")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment variables (and a .env file in the working directory, if
// present) override file values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// godotenv.Load does not override variables already set.
	_ = godotenv.Load()
	applyEnv(&cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.General.DataFile = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.General.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.General.LogLevel = strings.ToLower(v)
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
