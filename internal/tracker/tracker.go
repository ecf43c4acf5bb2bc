// Package tracker runs the load, log, predict, and present flow over an
// injected history store and presenter.
package tracker

import (
	"errors"
	"fmt"
	"slices"

	"github.com/theirongolddev/periodtrack/internal/history"
	"github.com/theirongolddev/periodtrack/internal/logger"
	"github.com/theirongolddev/periodtrack/internal/model"
)

// Presenter renders results and collects input. internal/cli provides the
// terminal implementation.
type Presenter interface {
	ShowSuccess(msg string)
	ShowWarning(msg string)
	ShowInfo(msg string)
	PromptDate(def model.Date) (model.Date, error)
	PromptIntRange(label string, lo, hi, def int) (int, error)
	RenderTable(title string, headers []string, rows [][]string)
}

// Tracker holds the in-memory history for one session.
type Tracker struct {
	store   history.Store
	out     Presenter
	history []model.Date
}

// New returns a tracker with an empty in-memory history. Call Load first.
func New(store history.Store, out Presenter) *Tracker {
	return &Tracker{
		store:   store,
		out:     out,
		history: []model.Date{},
	}
}

// Load replaces the in-memory history with the persisted one.
func (t *Tracker) Load() error {
	h, err := t.store.Load()
	if err != nil {
		return err
	}
	t.history = h
	return nil
}

// History returns a copy of the in-memory history, ascending.
func (t *Tracker) History() []model.Date {
	return slices.Clone(t.history)
}

// Log inserts d and persists the whole history. A date already present
// yields ErrDuplicateDate and nothing is written. If persisting fails the
// insert is kept in memory and an ErrStoreWrite error is returned.
func (t *Tracker) Log(d model.Date) error {
	updated, err := LogDate(t.store, t.history, d)
	t.history = updated
	return err
}

// LogDate inserts d into h and persists the result to store. h is never
// modified; the returned history is what the caller should keep, and it
// still holds d when persisting fails.
func LogDate(store history.Store, h []model.Date, d model.Date) ([]model.Date, error) {
	log := logger.With("tracker")

	updated, inserted := history.Insert(h, d)
	if !inserted {
		return h, fmt.Errorf("%w: %s", history.ErrDuplicateDate, d)
	}

	if err := store.Persist(updated); err != nil {
		log.WithError(err).Warn("persist failed, keeping in-memory history")
		if !errors.Is(err, history.ErrStoreWrite) {
			err = fmt.Errorf("%w: %w", history.ErrStoreWrite, err)
		}
		return updated, err
	}

	log.Debugf("logged %s (%d dates)", d, len(updated))
	return updated, nil
}

// Predict builds a report from the in-memory history.
func (t *Tracker) Predict(cfg model.CycleConfig, count int) (Report, error) {
	return BuildReport(t.history, cfg, count)
}

// logAndReport logs d and turns the outcome into a status message.
// Duplicate dates and write failures do not end the session.
func (t *Tracker) logAndReport(d model.Date) {
	err := t.Log(d)
	switch {
	case err == nil:
		t.out.ShowSuccess(MsgSaved)
	case errors.Is(err, history.ErrDuplicateDate):
		t.out.ShowWarning(MsgDuplicate)
	default:
		t.out.ShowWarning(fmt.Sprintf("Could not save history: %v", err))
	}
}
