package history

import (
	"slices"

	"github.com/theirongolddev/periodtrack/internal/model"
)

// MemoryStore is a Store held in memory. Persisted copies are isolated
// from the caller's slice.
type MemoryStore struct {
	dates []model.Date

	// Err, when set, is returned by Persist instead of storing.
	Err error
}

// NewMemoryStore returns a store preloaded with dates.
func NewMemoryStore(dates ...model.Date) *MemoryStore {
	return &MemoryStore{dates: slices.Clone(dates)}
}

// Load returns a sorted copy of the stored dates.
func (m *MemoryStore) Load() ([]model.Date, error) {
	out := slices.Clone(m.dates)
	if out == nil {
		out = []model.Date{}
	}
	Sort(out)
	return out, nil
}

// Persist replaces the stored dates.
func (m *MemoryStore) Persist(history []model.Date) error {
	if m.Err != nil {
		return m.Err
	}
	m.dates = slices.Clone(history)
	return nil
}
