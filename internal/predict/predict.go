// Package predict computes expected period windows from logged start dates.
// Every function is pure: same inputs, same outputs, no I/O.
package predict

import (
	"errors"
	"fmt"
	"iter"

	"github.com/theirongolddev/periodtrack/internal/model"
)

// ErrEmptyHistory is returned when a prediction needs at least one logged date.
var ErrEmptyHistory = errors.New("no period dates logged")

// LastStart returns the latest date in history. history need not be sorted.
func LastStart(history []model.Date) (model.Date, error) {
	if len(history) == 0 {
		return model.Date{}, ErrEmptyHistory
	}
	last := history[0]
	for _, d := range history[1:] {
		if d.After(last) {
			last = d
		}
	}
	return last, nil
}

// NextWindow returns the period window one cycle after last.
func NextWindow(last model.Date, cfg model.CycleConfig) (model.Window, error) {
	if err := cfg.Validate(); err != nil {
		return model.Window{}, err
	}
	start := last.AddDays(cfg.CycleLength)
	return model.Window{
		Start: start,
		End:   start.AddDays(cfg.PeriodLength - 1),
	}, nil
}

// Forecast returns count consecutive predicted cycles after last. Entry i
// starts cycleLength*i days after last.
func Forecast(last model.Date, cfg model.CycleConfig, count int) ([]model.ForecastEntry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: forecast count %d, want at least 1", model.ErrInvalidConfig, count)
	}

	entries := make([]model.ForecastEntry, 0, count)
	for i := 1; i <= count; i++ {
		start := last.AddDays(cfg.CycleLength * i)
		entries = append(entries, model.ForecastEntry{
			Index:          i,
			PredictedStart: start,
			PredictedEnd:   start.AddDays(cfg.PeriodLength - 1),
		})
	}
	return entries, nil
}

// PeriodDays yields every day from start to end inclusive, ascending.
// It yields nothing when end is before start. The sequence can be ranged
// over any number of times.
func PeriodDays(start, end model.Date) iter.Seq[model.Date] {
	return func(yield func(model.Date) bool) {
		for d := start; !d.After(end); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}
