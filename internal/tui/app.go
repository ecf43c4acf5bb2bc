// Package tui provides the interactive Bubble Tea dashboard for periodtrack.
package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/periodtrack/internal/cli"
	"github.com/theirongolddev/periodtrack/internal/history"
	"github.com/theirongolddev/periodtrack/internal/model"
	"github.com/theirongolddev/periodtrack/internal/predict"
	"github.com/theirongolddev/periodtrack/internal/tracker"
	"github.com/theirongolddev/periodtrack/internal/tui/components"
	"github.com/theirongolddev/periodtrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HistoryLoadedMsg is sent when the initial history load finishes.
type HistoryLoadedMsg struct {
	History []model.Date
	Err     error
}

// DateLoggedMsg is sent when a log attempt finishes. History is the
// history to keep, with Date inserted unless it was a duplicate.
type DateLoggedMsg struct {
	Date    model.Date
	History []model.Date
	Err     error
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	maxHistoryRows   = 8
)

// App is the root Bubble Tea model.
type App struct {
	store history.Store
	today model.Date

	// Quiet hides the disclaimer line.
	Quiet bool

	// Data. history only changes in Update, from message payloads.
	loaded  bool
	loadErr error
	history []model.Date
	logging bool // a log command is in flight

	// Session-only cycle settings, adjusted with [ ] - +
	cfg   model.CycleConfig
	count int

	report    tracker.Report
	reportErr error

	// Latest status message
	status     string
	statusKind components.StatusKind

	// UI state
	width  int
	height int
	keys   keyMap
	help   help.Model

	// Log-a-date form. logValue is a pointer because App is copied on
	// every Update while the form keeps writing to the same string.
	logForm  *huh.Form
	logValue *string
}

// NewApp creates the dashboard model. The history is loaded from store
// in Init.
func NewApp(store history.Store, cfg model.CycleConfig, count int) App {
	return App{
		store:    store,
		today:    model.Today(),
		cfg:      cfg,
		count:    count,
		keys:     newKeyMap(),
		help:     help.New(),
		logValue: new(string),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadHistoryCmd(a.store)
}

func loadHistoryCmd(store history.Store) tea.Cmd {
	return func() tea.Msg {
		h, err := store.Load()
		return HistoryLoadedMsg{History: h, Err: err}
	}
}

// logDateCmd persists h plus d. h must be a copy the caller no longer
// touches; the result comes back as a DateLoggedMsg.
func logDateCmd(store history.Store, h []model.Date, d model.Date) tea.Cmd {
	return func() tea.Msg {
		updated, err := tracker.LogDate(store, h, d)
		return DateLoggedMsg{Date: d, History: updated, Err: err}
	}
}

func (a *App) recompute() {
	if len(a.history) == 0 {
		a.report = tracker.Report{}
		a.reportErr = predict.ErrEmptyHistory
		return
	}
	a.report, a.reportErr = tracker.BuildReport(a.history, a.cfg, a.count)
}

func (a *App) setStatus(kind components.StatusKind, msg string) {
	a.statusKind = kind
	a.status = msg
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.logForm != nil {
			a.logForm = a.logForm.WithWidth(a.contentWidth())
		}
		return a, nil

	case HistoryLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.history = msg.History
			a.recompute()
		}
		return a, nil

	case DateLoggedMsg:
		a.logging = false
		if msg.History != nil {
			a.history = msg.History
		}
		switch {
		case msg.Err == nil:
			a.setStatus(components.StatusSuccess, tracker.MsgSaved)
		case errors.Is(msg.Err, history.ErrDuplicateDate):
			a.setStatus(components.StatusWarning, tracker.MsgDuplicate)
		default:
			a.setStatus(components.StatusWarning, fmt.Sprintf("Could not save history: %v", msg.Err))
		}
		a.recompute()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.logForm != nil {
			return a.updateLogForm(msg)
		}
		if !a.loaded {
			return a, nil
		}
		return a.handleKey(msg)
	}

	// Forward unhandled messages to the log form (cursor blinks, etc.)
	if a.logForm != nil {
		return a.updateLogForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil

	case key.Matches(msg, a.keys.Log):
		if a.loadErr != nil || a.logging {
			return a, nil
		}
		return a.openLogForm()

	case key.Matches(msg, a.keys.CycleDown):
		a.adjust(-1, 0)
	case key.Matches(msg, a.keys.CycleUp):
		a.adjust(1, 0)
	case key.Matches(msg, a.keys.PeriodDown):
		a.adjust(0, -1)
	case key.Matches(msg, a.keys.PeriodUp):
		a.adjust(0, 1)
	}
	return a, nil
}

// adjust shifts the session cycle settings, clamped to their bounds.
func (a *App) adjust(cycleDelta, periodDelta int) {
	a.cfg.CycleLength = clamp(a.cfg.CycleLength+cycleDelta, model.MinCycleLength, model.MaxCycleLength)
	a.cfg.PeriodLength = clamp(a.cfg.PeriodLength+periodDelta, model.MinPeriodLength, model.MaxPeriodLength)
	a.setStatus(components.StatusInfo, fmt.Sprintf("Cycle %s, period %s (this session only)",
		cli.FormatDays(a.cfg.CycleLength), cli.FormatDays(a.cfg.PeriodLength)))
	a.recompute()
}

func (a App) openLogForm() (tea.Model, tea.Cmd) {
	*a.logValue = a.today.String()
	a.logForm = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Log the first day of a period").
			Description("YYYY-MM-DD · enter to save · esc to cancel").
			Value(a.logValue).
			Validate(cli.ValidateDate),
	)).WithShowHelp(false).WithWidth(a.contentWidth())
	a.logForm.CancelCmd = nil
	a.logForm.SubmitCmd = nil
	return a, a.logForm.Init()
}

func (a App) updateLogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.logForm = nil
		a.setStatus(components.StatusInfo, "Cancelled.")
		return a, nil
	}

	form, cmd := a.logForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.logForm = f
	}

	switch a.logForm.State {
	case huh.StateCompleted:
		a.logForm = nil
		d, err := model.ParseDate(*a.logValue)
		if err != nil {
			a.setStatus(components.StatusWarning, err.Error())
			return a, nil
		}
		a.logging = true
		return a, logDateCmd(a.store, slices.Clone(a.history), d)
	case huh.StateAborted:
		a.logForm = nil
		a.setStatus(components.StatusInfo, "Cancelled.")
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  periodtrack needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	var b strings.Builder
	b.WriteString(a.viewHeader())
	b.WriteString("\n\n")

	switch {
	case a.logForm != nil:
		b.WriteString(a.logForm.View())
	case !a.loaded:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("  Loading history…"))
	case a.loadErr != nil:
		b.WriteString(components.ContentCard("Could not read history", a.loadErr.Error(), a.contentWidth()))
	case errors.Is(a.reportErr, predict.ErrEmptyHistory):
		b.WriteString(components.ContentCard("Getting started",
			tracker.MsgNoData+"\nPress a to log the first day of your last period.", a.contentWidth()))
	case a.reportErr != nil:
		b.WriteString(components.ContentCard("Cannot predict", a.reportErr.Error(), a.contentWidth()))
	default:
		b.WriteString(a.viewReport())
	}

	b.WriteString("\n\n")
	b.WriteString(components.RenderStatusBar(a.contentWidth(), a.help.View(a.keys), a.status, a.statusKind))
	return b.String()
}

func (a App) viewHeader() string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.Period).Bold(true).Render("◈ periodtrack")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · cycle forecast")
	today := lipgloss.NewStyle().Foreground(t.TextDim).Render("  today " + cli.FormatDate(a.today))
	return " " + logo + sub + today
}

func (a App) viewReport() string {
	t := theme.Active
	r := a.report
	w := a.contentWidth()

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Next period", Value: cli.FormatDate(r.Next.Start), Note: cli.FormatRelative(a.today, r.Next.Start)},
		{Label: "May last until", Value: cli.FormatDate(r.Next.End), Note: cli.FormatDays(r.Next.Len())},
		{Label: "Cycle / period", Value: fmt.Sprintf("%d / %d days", r.Config.CycleLength, r.Config.PeriodLength), Note: "[ ] cycle · - + period"},
		{Label: "Last logged", Value: cli.FormatDate(r.LastStart), Note: cli.FormatRelative(a.today, r.LastStart)},
	}, w)

	periodStyle := lipgloss.NewStyle().Foreground(t.Period)
	forecastStyle := lipgloss.NewStyle().Foreground(t.Forecast)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var fc strings.Builder
	for i, e := range r.Forecast {
		if i > 0 {
			fc.WriteString("\n")
		}
		style := forecastStyle
		if i == 0 {
			style = periodStyle
		}
		fc.WriteString(mutedStyle.Render(cli.FormatCycleLabel(e.Index) + "  "))
		fc.WriteString(style.Render(cli.FormatWindow(e.Window())))
	}

	var days strings.Builder
	for i, d := range r.PeriodDays {
		if i > 0 {
			days.WriteString("\n")
		}
		days.WriteString(mutedStyle.Render(cli.FormatDayOfWeek(d) + " "))
		days.WriteString(periodStyle.Render(cli.FormatDate(d)))
	}

	var hist strings.Builder
	newest := history.Newest(r.History)
	for i, d := range newest {
		if i == maxHistoryRows {
			hist.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("… and %d more", len(newest)-maxHistoryRows)))
			break
		}
		if i > 0 {
			hist.WriteString("\n")
		}
		hist.WriteString(cli.FormatDate(d))
	}

	cols := components.LayoutRow(w, 3)
	cards := components.CardRow([]string{
		components.ContentCard("Upcoming Cycle Schedule", fc.String(), cols[0]),
		components.ContentCard("Upcoming Period Days", days.String(), cols[1]),
		components.ContentCard(fmt.Sprintf("History (%d)", len(newest)), hist.String(), cols[2]),
	})

	view := metrics + "\n" + cards
	if !a.Quiet {
		view += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(" "+tracker.MsgDisclaimer)
	}
	return view
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
