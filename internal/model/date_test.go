package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-05", Date{2024, time.January, 5}, false},
		{" 2024-02-29 ", Date{2024, time.February, 29}, false},
		{"2024-01-05 00:00:00", Date{2024, time.January, 5}, false},
		{"2024-01-05 10:30:00", Date{}, true},
		{"2023-02-29", Date{}, true},
		{"05/01/2024", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2024-01-01", 28, "2024-01-29"},
		{"2024-01-29", 4, "2024-02-02"},
		{"2024-02-27", 3, "2024-03-01"},
		{"2023-02-27", 3, "2023-03-02"},
		{"2024-12-20", 14, "2025-01-03"},
		{"2024-03-01", -1, "2024-02-29"},
	}

	for _, tt := range tests {
		got := MustParseDate(tt.start).AddDays(tt.n)
		if got.String() != tt.want {
			t.Errorf("%s + %d = %s, want %s", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	a := MustParseDate("2024-01-01")
	b := MustParseDate("2024-03-01")
	if got := a.DaysUntil(b); got != 60 {
		t.Fatalf("DaysUntil = %d, want 60", got)
	}
	if got := b.DaysUntil(a); got != -60 {
		t.Fatalf("reverse DaysUntil = %d, want -60", got)
	}
}

func TestDaysUntil_WideSpans(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"0001-01-01", "2024-01-01", 738885},
		{"2024-01-01", "0001-01-01", -738885},
		{"0001-01-01", "9999-12-31", 3652058},
	}
	for _, tt := range tests {
		if got := MustParseDate(tt.from).DaysUntil(MustParseDate(tt.to)); got != tt.want {
			t.Errorf("%s.DaysUntil(%s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := MustParseDate("2024-01-31")
	b := MustParseDate("2024-02-01")
	if !a.Before(b) || a.After(b) {
		t.Fatalf("%v should be before %v", a, b)
	}
	if a.Compare(a) != 0 {
		t.Fatal("date should compare equal to itself")
	}
	if b.Compare(a) != 1 {
		t.Fatal("later date should compare as +1")
	}
}

func TestFormatDisplay(t *testing.T) {
	got := MustParseDate("2024-01-05").Format(DisplayLayout)
	if got != "05 Jan 2024" {
		t.Fatalf("Format = %q, want %q", got, "05 Jan 2024")
	}
}

func TestCycleConfigValidate(t *testing.T) {
	tests := []struct {
		cfg     CycleConfig
		wantErr bool
	}{
		{CycleConfig{28, 5}, false},
		{CycleConfig{21, 3}, false},
		{CycleConfig{35, 7}, false},
		{CycleConfig{20, 5}, true},
		{CycleConfig{36, 5}, true},
		{CycleConfig{28, 2}, true},
		{CycleConfig{28, 8}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate(%+v) = %v, want ErrInvalidConfig", tt.cfg, err)
			}
		} else if err != nil {
			t.Errorf("Validate(%+v) unexpected error: %v", tt.cfg, err)
		}
	}
}

func TestWindowLen(t *testing.T) {
	w := Window{Start: MustParseDate("2024-01-29"), End: MustParseDate("2024-02-02")}
	if w.Len() != 5 {
		t.Fatalf("Len = %d, want 5", w.Len())
	}
	inverted := Window{Start: w.End, End: w.Start}
	if inverted.Len() != 0 {
		t.Fatalf("inverted Len = %d, want 0", inverted.Len())
	}
}
