// Package cli provides formatting, rendering, and prompting for terminal output.
package cli

import (
	"fmt"

	"github.com/theirongolddev/periodtrack/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatDate formats a date for display, e.g. "05 Jan 2024".
func FormatDate(d model.Date) string {
	return d.Format(model.DisplayLayout)
}

// FormatWindow formats an inclusive window, e.g. "29 Jan 2024 – 02 Feb 2024".
func FormatWindow(w model.Window) string {
	return FormatDate(w.Start) + " – " + FormatDate(w.End)
}

// FormatRelative describes d relative to today.
// e.g., "today", "tomorrow", "yesterday", "2 weeks from now", "3 days ago"
func FormatRelative(today, d model.Date) string {
	switch today.DaysUntil(d) {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}
	return humanize.RelTime(d.Time(), today.Time(), "ago", "from now")
}

// FormatDays formats a day count, e.g. "1 day", "28 days".
func FormatDays(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d day", n)
	}
	return fmt.Sprintf("%d days", n)
}

// FormatCycleLabel returns the ordinal label for a forecast entry.
// e.g., 1 -> "1st cycle", 2 -> "2nd cycle"
func FormatCycleLabel(index int) string {
	return humanize.Ordinal(index) + " cycle"
}

// FormatDayOfWeek returns a 3-letter day abbreviation for d.
func FormatDayOfWeek(d model.Date) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	wd := int(d.Weekday())
	if wd >= 0 && wd < 7 {
		return days[wd]
	}
	return "???"
}
