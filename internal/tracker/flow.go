package tracker

import "github.com/theirongolddev/periodtrack/internal/model"

// Section selects which parts of a report Run renders.
type Section uint8

const (
	SectionNext Section = 1 << iota
	SectionForecast
	SectionDays
	SectionHistory
	SectionDisclaimer

	SectionAll = SectionNext | SectionForecast | SectionDays | SectionHistory | SectionDisclaimer
)

// RunOptions configures a non-interactive Run.
type RunOptions struct {
	Log      *model.Date // logged before rendering when set
	Config   model.CycleConfig
	Count    int
	Sections Section
}

// InteractiveOptions configures Interactive.
type InteractiveOptions struct {
	Defaults model.CycleConfig
	Count    int
	SkipLog  bool // don't ask for a new start date
}

// Run optionally logs a date, then renders the selected sections. With no
// logged dates it shows MsgNoData and stops without predicting.
func (t *Tracker) Run(opts RunOptions) error {
	if opts.Log != nil {
		t.logAndReport(*opts.Log)
	}
	return t.render(opts.Config, opts.Count, opts.Sections)
}

// Interactive asks for a start date and the cycle settings through the
// presenter, then renders everything.
func (t *Tracker) Interactive(opts InteractiveOptions) error {
	if !opts.SkipLog {
		d, err := t.out.PromptDate(model.Today())
		if err != nil {
			return err
		}
		t.logAndReport(d)
	}

	if len(t.history) == 0 {
		t.out.ShowInfo(MsgNoData)
		return nil
	}

	cycleLen, err := t.out.PromptIntRange("Average cycle length (days)",
		model.MinCycleLength, model.MaxCycleLength, opts.Defaults.CycleLength)
	if err != nil {
		return err
	}
	periodLen, err := t.out.PromptIntRange("Average period duration (days)",
		model.MinPeriodLength, model.MaxPeriodLength, opts.Defaults.PeriodLength)
	if err != nil {
		return err
	}

	cfg := model.CycleConfig{CycleLength: cycleLen, PeriodLength: periodLen}
	return t.render(cfg, opts.Count, SectionAll)
}

func (t *Tracker) render(cfg model.CycleConfig, count int, sections Section) error {
	if len(t.history) == 0 {
		t.out.ShowInfo(MsgNoData)
		return nil
	}

	// History needs no prediction; render it even if the rest is skipped.
	if sections&^(SectionHistory|SectionDisclaimer) == 0 {
		t.renderHistory(sections)
		return nil
	}

	r, err := t.Predict(cfg, count)
	if err != nil {
		return err
	}

	if sections&SectionNext != 0 {
		t.out.ShowSuccess(r.NextMessage())
	}
	if sections&SectionForecast != 0 {
		t.out.RenderTable("Upcoming Cycle Schedule",
			[]string{"Cycle", "Predicted Start", "Predicted End"}, r.ForecastRows())
	}
	if sections&SectionDays != 0 {
		t.out.RenderTable("Upcoming Period Days",
			[]string{"Date", "Status"}, r.PeriodDayRows())
	}
	t.renderHistory(sections)
	return nil
}

func (t *Tracker) renderHistory(sections Section) {
	if sections&SectionHistory != 0 {
		t.out.RenderTable("Logged Period History", []string{"Start Date"}, HistoryRows(t.history))
	}
	if sections&SectionDisclaimer != 0 {
		t.out.ShowInfo(MsgDisclaimer)
	}
}
