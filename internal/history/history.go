// Package history owns the logged period start dates: the pure
// insert-if-absent operations and the durable Store backends.
package history

import (
	"errors"
	"slices"

	"github.com/theirongolddev/periodtrack/internal/model"
)

var (
	// ErrStoreRead means persisted history exists but could not be read or parsed.
	ErrStoreRead = errors.New("history store read failed")
	// ErrStoreWrite means the history could not be persisted.
	ErrStoreWrite = errors.New("history store write failed")
	// ErrDuplicateDate means the date is already logged. It is a soft error.
	ErrDuplicateDate = errors.New("date already logged")
)

// Store loads and persists the full history. Implementations overwrite the
// whole history on Persist; there are no partial updates.
type Store interface {
	Load() ([]model.Date, error)
	Persist(history []model.Date) error
}

// Contains reports whether d is already in history.
func Contains(history []model.Date, d model.Date) bool {
	return slices.Contains(history, d)
}

// Insert adds d to history if absent. The returned slice is a sorted copy;
// history itself is never modified. When d is already present, history is
// returned as-is with inserted=false.
func Insert(history []model.Date, d model.Date) (updated []model.Date, inserted bool) {
	if Contains(history, d) {
		return history, false
	}

	updated = make([]model.Date, 0, len(history)+1)
	updated = append(updated, history...)
	updated = append(updated, d)
	Sort(updated)
	return updated, true
}

// Sort orders dates ascending in place.
func Sort(dates []model.Date) {
	slices.SortStableFunc(dates, model.Date.Compare)
}

// Newest returns a copy of history ordered newest first.
func Newest(history []model.Date) []model.Date {
	out := slices.Clone(history)
	slices.SortStableFunc(out, func(a, b model.Date) int { return b.Compare(a) })
	return out
}

// Merge inserts every date from incoming that history lacks, ignoring
// duplicates within incoming too. It returns a sorted copy and the number of
// dates added; history itself is never modified.
func Merge(history, incoming []model.Date) (merged []model.Date, added int) {
	merged = slices.Clone(history)
	for _, d := range incoming {
		if Contains(merged, d) {
			continue
		}
		merged = append(merged, d)
		added++
	}
	Sort(merged)
	return merged, added
}
