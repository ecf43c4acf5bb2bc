package tracker

import (
	"fmt"
	"slices"

	"github.com/theirongolddev/periodtrack/internal/history"
	"github.com/theirongolddev/periodtrack/internal/model"
	"github.com/theirongolddev/periodtrack/internal/predict"
)

// User-facing status messages.
const (
	MsgSaved      = "Period date saved successfully."
	MsgDuplicate  = "This date is already logged."
	MsgNoData     = "No period dates logged yet."
	MsgDisclaimer = "This tracker provides estimated dates only and is not a medical tool."

	StatusPeriodDay = "Period Day"
)

// Report is everything computed for one view of the history.
type Report struct {
	LastStart  model.Date
	Config     model.CycleConfig
	Next       model.Window
	Forecast   []model.ForecastEntry
	PeriodDays []model.Date
	History    []model.Date // ascending
}

// BuildReport runs the predictor over h. It fails with
// predict.ErrEmptyHistory when h is empty and model.ErrInvalidConfig for
// out-of-range settings.
func BuildReport(h []model.Date, cfg model.CycleConfig, count int) (Report, error) {
	last, err := predict.LastStart(h)
	if err != nil {
		return Report{}, err
	}
	next, err := predict.NextWindow(last, cfg)
	if err != nil {
		return Report{}, err
	}
	forecast, err := predict.Forecast(last, cfg, count)
	if err != nil {
		return Report{}, err
	}

	return Report{
		LastStart:  last,
		Config:     cfg,
		Next:       next,
		Forecast:   forecast,
		PeriodDays: slices.Collect(predict.PeriodDays(next.Start, next.End)),
		History:    slices.Clone(h),
	}, nil
}

// NextMessage is the one-line summary of the next window.
func (r Report) NextMessage() string {
	return fmt.Sprintf("Your next period is expected to start on %s and may last until %s.",
		r.Next.Start.Format(model.DisplayLayout),
		r.Next.End.Format(model.DisplayLayout),
	)
}

// ForecastRows returns the forecast as display rows.
func (r Report) ForecastRows() [][]string {
	rows := make([][]string, 0, len(r.Forecast))
	for _, e := range r.Forecast {
		rows = append(rows, []string{
			fmt.Sprintf("Cycle %d", e.Index),
			e.PredictedStart.Format(model.DisplayLayout),
			e.PredictedEnd.Format(model.DisplayLayout),
		})
	}
	return rows
}

// PeriodDayRows returns the upcoming period days as display rows.
func (r Report) PeriodDayRows() [][]string {
	rows := make([][]string, 0, len(r.PeriodDays))
	for _, d := range r.PeriodDays {
		rows = append(rows, []string{d.Format(model.DisplayLayout), StatusPeriodDay})
	}
	return rows
}

// HistoryRows returns logged dates newest first.
func HistoryRows(h []model.Date) [][]string {
	newest := history.Newest(h)
	rows := make([][]string, 0, len(newest))
	for _, d := range newest {
		rows = append(rows, []string{d.Format(model.DisplayLayout)})
	}
	return rows
}
