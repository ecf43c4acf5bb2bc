package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/periodtrack/internal/model"

	"github.com/charmbracelet/huh"
)

// Presenter writes status lines and tables to a writer and prompts with
// huh forms. It implements tracker.Presenter.
type Presenter struct {
	out io.Writer

	// Accessible switches huh to plain line-based prompts.
	Accessible bool

	// Quiet drops ShowInfo lines.
	Quiet bool
}

// NewPresenter returns a presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// ShowSuccess prints a success line.
func (p *Presenter) ShowSuccess(msg string) {
	fmt.Fprintln(p.out, RenderSuccess(msg))
}

// ShowWarning prints a warning line.
func (p *Presenter) ShowWarning(msg string) {
	fmt.Fprintln(p.out, RenderWarning(msg))
}

// ShowInfo prints an informational line.
func (p *Presenter) ShowInfo(msg string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.out, RenderInfo(msg))
}

// RenderTable prints a titled table preceded by a blank line.
func (p *Presenter) RenderTable(title string, headers []string, rows [][]string) {
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, RenderTable(Table{
		Title:   title,
		Headers: headers,
		Rows:    rows,
	}))
}

// PromptDate asks for a calendar date, prefilled with def.
func (p *Presenter) PromptDate(def model.Date) (model.Date, error) {
	value := def.String()

	err := p.run(huh.NewInput().
		Title("Select the first day of your period").
		Description("YYYY-MM-DD").
		Value(&value).
		Validate(ValidateDate))
	if err != nil {
		return model.Date{}, err
	}
	return model.ParseDate(value)
}

// PromptIntRange asks for an integer in [lo, hi], preselecting def.
func (p *Presenter) PromptIntRange(label string, lo, hi, def int) (int, error) {
	value := clamp(def, lo, hi)

	err := p.run(huh.NewSelect[int]().
		Title(label).
		Options(IntOptions(lo, hi)...).
		Value(&value))
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (p *Presenter) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.Accessible).
		Run()
}

// ValidateDate is a huh validator for YYYY-MM-DD input.
func ValidateDate(s string) error {
	_, err := model.ParseDate(s)
	return err
}

// IntOptions returns select options for every integer in [lo, hi].
func IntOptions(lo, hi int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
	}
	return opts
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
