package history

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/theirongolddev/periodtrack/internal/model"
)

func dates(t *testing.T, ss ...string) []model.Date {
	t.Helper()
	out := make([]model.Date, 0, len(ss))
	for _, s := range ss {
		d, err := model.ParseDate(s)
		if err != nil {
			t.Fatalf("parse date %q: %v", s, err)
		}
		out = append(out, d)
	}
	return out
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "period_data.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInsert_DuplicateLeavesHistoryUnchanged(t *testing.T) {
	h := dates(t, "2024-01-01")

	got, inserted := Insert(h, model.MustParseDate("2024-01-01"))
	if inserted {
		t.Fatal("inserted = true for an existing date")
	}
	if !slices.Equal(got, h) {
		t.Fatalf("history changed: got %v, want %v", got, h)
	}
}

func TestInsert_NewDateSortsAndGrows(t *testing.T) {
	h := dates(t, "2024-01-01", "2024-03-01")
	orig := slices.Clone(h)

	got, inserted := Insert(h, model.MustParseDate("2024-02-01"))
	if !inserted {
		t.Fatal("inserted = false for a new date")
	}
	want := dates(t, "2024-01-01", "2024-02-01", "2024-03-01")
	if !slices.Equal(got, want) {
		t.Fatalf("Insert = %v, want %v", got, want)
	}
	if !slices.Equal(h, orig) {
		t.Fatalf("input history was mutated: %v", h)
	}
}

func TestInsert_Properties(t *testing.T) {
	h := dates(t, "2023-11-04", "2023-12-02", "2024-01-01")
	candidates := dates(t, "2023-10-01", "2023-11-04", "2023-12-15", "2024-01-01", "2024-06-30")

	for _, c := range candidates {
		got, inserted := Insert(h, c)
		if Contains(h, c) {
			if inserted || len(got) != len(h) {
				t.Errorf("Insert(%v) existing: inserted=%v len=%d", c, inserted, len(got))
			}
			continue
		}
		if !inserted || len(got) != len(h)+1 || !Contains(got, c) {
			t.Errorf("Insert(%v) new: inserted=%v len=%d", c, inserted, len(got))
		}
		if !slices.IsSortedFunc(got, model.Date.Compare) {
			t.Errorf("Insert(%v) result not sorted: %v", c, got)
		}
	}
}

func TestInsert_EmptyHistory(t *testing.T) {
	got, inserted := Insert(nil, model.MustParseDate("2024-01-01"))
	if !inserted || len(got) != 1 {
		t.Fatalf("Insert into empty = %v, %v", got, inserted)
	}
}

func TestNewest(t *testing.T) {
	h := dates(t, "2024-01-01", "2024-02-01", "2024-03-01")
	got := Newest(h)
	want := dates(t, "2024-03-01", "2024-02-01", "2024-01-01")
	if !slices.Equal(got, want) {
		t.Fatalf("Newest = %v, want %v", got, want)
	}
	if h[0] != model.MustParseDate("2024-01-01") {
		t.Fatal("Newest mutated its input")
	}
}

func TestMerge(t *testing.T) {
	h := dates(t, "2024-01-01", "2024-03-01")
	incoming := dates(t, "2024-02-01", "2024-01-01", "2024-02-01", "2023-12-01")

	got, added := Merge(h, incoming)
	want := dates(t, "2023-12-01", "2024-01-01", "2024-02-01", "2024-03-01")
	if !slices.Equal(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}
	if len(h) != 2 {
		t.Error("Merge mutated its input")
	}

	same, added := Merge(h, h)
	if added != 0 || !slices.Equal(same, h) {
		t.Errorf("Merge with itself = %v (%d added)", same, added)
	}
}

func TestCSVStore_LoadMissingFile(t *testing.T) {
	s := NewCSVStore(filepath.Join(t.TempDir(), "missing.csv"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load = %v, want empty", got)
	}
}

func TestCSVStore_LoadEmptyFile(t *testing.T) {
	s := NewCSVStore(writeFile(t, ""))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load = %v, want empty", got)
	}
}

func TestCSVStore_LoadHeaderOnly(t *testing.T) {
	s := NewCSVStore(writeFile(t, "Start Date\n"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load = %v, want empty", got)
	}
}

func TestCSVStore_LoadSortsExternalEdits(t *testing.T) {
	s := NewCSVStore(writeFile(t, "Start Date\n2024-03-01\n2024-01-01\n2024-02-01 00:00:00\n"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := dates(t, "2024-01-01", "2024-02-01", "2024-03-01")
	if !slices.Equal(got, want) {
		t.Fatalf("Load = %v, want %v", got, want)
	}
}

func TestCSVStore_LoadMalformed(t *testing.T) {
	tests := map[string]string{
		"bad header":   "Date\n2024-01-01\n",
		"bad date":     "Start Date\n2024-13-01\n",
		"extra column": "Start Date\n2024-01-01,x\n",
		"free text":    "Start Date\nyesterday\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewCSVStore(writeFile(t, content))
			_, err := s.Load()
			if !errors.Is(err, ErrStoreRead) {
				t.Fatalf("Load err = %v, want ErrStoreRead", err)
			}
		})
	}
}

func TestCSVStore_PersistRoundTrip(t *testing.T) {
	content := "Start Date\n2023-12-04\n2024-01-01\n"
	path := writeFile(t, content)
	s := NewCSVStore(path)

	h, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.Persist(h); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Fatalf("round trip changed content:\n got %q\nwant %q", got, content)
	}
}

func TestCSVStore_PersistCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "period_data.csv")
	s := NewCSVStore(path)

	h, _ := Insert(nil, model.MustParseDate("2024-01-01"))
	if err := s.Persist(h); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(got, h) {
		t.Fatalf("Load = %v, want %v", got, h)
	}
}

func TestCSVStore_PersistFailure(t *testing.T) {
	// A regular file where the parent directory should be.
	blocker := writeFile(t, "not a dir")
	s := NewCSVStore(filepath.Join(blocker, "period_data.csv"))

	err := s.Persist(dates(t, "2024-01-01"))
	if !errors.Is(err, ErrStoreWrite) {
		t.Fatalf("Persist err = %v, want ErrStoreWrite", err)
	}
}

func TestMemoryStore_IsolatesSlices(t *testing.T) {
	h := dates(t, "2024-01-01")
	m := NewMemoryStore()
	if err := m.Persist(h); err != nil {
		t.Fatal(err)
	}
	h[0] = model.MustParseDate("1999-01-01")

	got, _ := m.Load()
	if got[0] != model.MustParseDate("2024-01-01") {
		t.Fatalf("store shares caller slice: %v", got)
	}
}
