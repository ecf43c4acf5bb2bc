package model

import (
	"errors"
	"fmt"
)

// Bounds for CycleConfig values, in days.
const (
	MinCycleLength  = 21
	MaxCycleLength  = 35
	MinPeriodLength = 3
	MaxPeriodLength = 7

	DefaultCycleLength   = 28
	DefaultPeriodLength  = 5
	DefaultForecastCount = 3
)

// ErrInvalidConfig is returned when cycle settings fall outside their bounds.
var ErrInvalidConfig = errors.New("invalid cycle config")

// CycleConfig holds the averages used for a single prediction.
// It is supplied per computation and never persisted with the history.
type CycleConfig struct {
	CycleLength  int // days from one start date to the next
	PeriodLength int // days a period lasts, inclusive of the start day
}

// DefaultCycleConfig returns the 28/5 defaults.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		CycleLength:  DefaultCycleLength,
		PeriodLength: DefaultPeriodLength,
	}
}

// Validate checks both lengths against their bounds.
func (c CycleConfig) Validate() error {
	if c.CycleLength < MinCycleLength || c.CycleLength > MaxCycleLength {
		return fmt.Errorf("%w: cycle length %d outside [%d, %d]",
			ErrInvalidConfig, c.CycleLength, MinCycleLength, MaxCycleLength)
	}
	if c.PeriodLength < MinPeriodLength || c.PeriodLength > MaxPeriodLength {
		return fmt.Errorf("%w: period length %d outside [%d, %d]",
			ErrInvalidConfig, c.PeriodLength, MinPeriodLength, MaxPeriodLength)
	}
	return nil
}

// Window is an inclusive range of predicted period days.
type Window struct {
	Start Date
	End   Date
}

// Len returns the number of days in the window.
func (w Window) Len() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return w.Start.DaysUntil(w.End) + 1
}

// ForecastEntry is one predicted future cycle.
type ForecastEntry struct {
	Index          int // 1-based
	PredictedStart Date
	PredictedEnd   Date
}

// Window returns the entry's period window.
func (e ForecastEntry) Window() Window {
	return Window{Start: e.PredictedStart, End: e.PredictedEnd}
}
