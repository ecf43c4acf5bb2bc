package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/theirongolddev/periodtrack/internal/model"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate(model.MustParseDate("2024-01-05")); got != "05 Jan 2024" {
		t.Fatalf("FormatDate = %q, want %q", got, "05 Jan 2024")
	}
}

func TestFormatRelative(t *testing.T) {
	today := model.MustParseDate("2024-01-01")
	tests := []struct {
		d    string
		want string
	}{
		{"2024-01-01", "today"},
		{"2024-01-02", "tomorrow"},
		{"2023-12-31", "yesterday"},
		{"2024-01-04", "3 days from now"},
		{"2023-12-29", "3 days ago"},
		{"2024-01-29", "4 weeks from now"},
	}

	for _, tt := range tests {
		if got := FormatRelative(today, model.MustParseDate(tt.d)); got != tt.want {
			t.Errorf("FormatRelative(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if FormatDays(1) != "1 day" || FormatDays(28) != "28 days" {
		t.Fatalf("FormatDays = %q, %q", FormatDays(1), FormatDays(28))
	}
}

func TestFormatCycleLabel(t *testing.T) {
	if got := FormatCycleLabel(2); got != "2nd cycle" {
		t.Fatalf("FormatCycleLabel(2) = %q", got)
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	// 2024-01-01 was a Monday.
	if got := FormatDayOfWeek(model.MustParseDate("2024-01-01")); got != "Mon" {
		t.Fatalf("FormatDayOfWeek = %q, want Mon", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Upcoming Cycle Schedule",
		Headers: []string{"Cycle", "Predicted Start"},
		Rows: [][]string{
			{"Cycle 1", "29 Jan 2024"},
			{"Cycle 2", "26 Feb 2024"},
		},
	})

	for _, want := range []string{"Upcoming Cycle Schedule", "Predicted Start", "Cycle 2", "26 Feb 2024", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// title + top + header + separator + 2 rows + bottom
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("table has %d lines, want 7:\n%s", len(lines), out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("empty table = %q, want empty", got)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 4); got != " ab   " {
		t.Fatalf("pad = %q", got)
	}
	if got := pad("abcdef", 4); got != " abcdef " {
		t.Fatalf("overflow pad = %q", got)
	}
}

func TestPresenterOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)

	p.ShowSuccess("Period date saved successfully.")
	p.ShowWarning("This date is already logged.")
	p.ShowInfo("No period dates logged yet.")
	p.RenderTable("Logged Period History", []string{"Start Date"}, [][]string{{"01 Jan 2024"}})

	out := buf.String()
	for _, want := range []string{
		"Period date saved successfully.",
		"This date is already logged.",
		"No period dates logged yet.",
		"Logged Period History",
		"01 Jan 2024",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-02-29"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if err := ValidateDate("2024-02-30"); err == nil {
		t.Fatal("invalid date accepted")
	}
}

func TestIntOptions(t *testing.T) {
	opts := IntOptions(21, 35)
	if len(opts) != 15 {
		t.Fatalf("len = %d, want 15", len(opts))
	}
	if opts[0].Value != 21 || opts[14].Value != 35 || opts[7].Key != "28" {
		t.Fatalf("unexpected options: first=%v last=%v mid=%q", opts[0].Value, opts[14].Value, opts[7].Key)
	}
}

func TestClamp(t *testing.T) {
	if clamp(40, 21, 35) != 35 || clamp(1, 3, 7) != 3 || clamp(5, 3, 7) != 5 {
		t.Fatal("clamp out of bounds")
	}
}

func TestPresenterQuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf)
	p.Quiet = true

	p.ShowInfo("No period dates logged yet.")
	p.ShowWarning("This date is already logged.")

	out := buf.String()
	if strings.Contains(out, "No period dates logged yet.") {
		t.Errorf("quiet presenter printed info:\n%s", out)
	}
	if !strings.Contains(out, "This date is already logged.") {
		t.Errorf("quiet presenter dropped a warning:\n%s", out)
	}
}

func TestRenderTitleAndMuted(t *testing.T) {
	title := RenderTitle("PERIODTRACK")
	if !strings.Contains(title, "PERIODTRACK") || !strings.Contains(title, "╭") {
		t.Errorf("RenderTitle = %q", title)
	}
	if got := RenderMuted("cycle 28 days"); !strings.Contains(got, "cycle 28 days") {
		t.Errorf("RenderMuted = %q", got)
	}
}
