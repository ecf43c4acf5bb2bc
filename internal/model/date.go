// Package model defines the shared data types for periodtrack.
package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ISOLayout is the on-disk date layout.
	ISOLayout = "2006-01-02"
	// DisplayLayout is the human-readable date layout, e.g. "05 Jan 2024".
	DisplayLayout = "02 Jan 2006"

	// legacyLayout matches rows written with a midnight time component.
	legacyLayout = "2006-01-02 15:04:05"
)

// Date is a civil calendar date with no time-of-day and no zone.
// The zero value is not a valid date. Dates are comparable with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD). A trailing
// midnight time ("2024-01-05 00:00:00") is also accepted.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		lt, lerr := time.Parse(legacyLayout, s)
		if lerr != nil || lt.Hour() != 0 || lt.Minute() != 0 || lt.Second() != 0 {
			return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
		}
		t = lt
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals. It panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// DaysUntil returns the number of days from d to other (negative if other
// is earlier).
func (d Date) DaysUntil(other Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// Compare returns -1, 0, or +1 ordering d against other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String returns the ISO form, YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format formats d using a time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
