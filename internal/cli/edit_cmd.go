package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/alexanderramin/careminder/internal/cli/formatter"
	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/alexanderramin/careminder/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errEditCancelled = errors.New("edit cancelled")

// editorChoices is what the interactive form collects.
type editorChoices struct {
	Enabled  bool
	Unit     domain.Unit
	Interval string
	Weekdays []time.Weekday
	Times    []time.Time
	Monthly  int
	Until    string
}

func newEditCmd(app *App) *cobra.Command {
	var (
		date    string
		action  string
		preview int
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a recurrence interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("edit needs an interactive terminal; use `careminder plan` instead")
			}
			ctx := cmd.Context()

			ref, err := parseReference(date, app.location(), app.now())
			if err != nil {
				return err
			}
			suggestion, err := resolveSuggestion(ctx, app, action, "")
			if err != nil {
				return err
			}
			draft, err := app.Editor.Open(ctx, ref, suggestion)
			if err != nil {
				return err
			}
			defer func() { _ = app.Editor.Close(ctx, draft.ID) }()

			slots, err := app.Editor.TimeSlots(ctx, draft.ID)
			if err != nil {
				return err
			}
			opts, err := app.Editor.MonthlyOptions(ctx, draft.ID)
			if err != nil {
				return err
			}

			choices := choicesFromDraft(draft, opts)
			form := newEditorForm(slots, opts, &choices)
			final, err := tea.NewProgram(newEditorModel(form),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			if m, ok := final.(*editorModel); !ok || m.cancelled {
				return errEditCancelled
			}

			updated, err := applyChoices(ctx, app, draft, slots, opts, choices)
			if err != nil {
				return err
			}
			rec, ok := updated.Recurrence.Get()
			if !ok {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDisabled(updated.Reference))
				return nil
			}

			var occurrences []time.Time
			if preview > 0 {
				if occurrences, err = app.Editor.Preview(ctx, updated.ID, preview); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecurrence(updated.Reference, rec, occurrences))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date, optionally with time (default now)")
	cmd.Flags().StringVar(&action, "action", "", "start from a catalog action's suggested frequency")
	cmd.Flags().IntVar(&preview, "preview", 5, "list the first N occurrences after saving")
	return cmd
}

// choicesFromDraft pre-fills the form with the draft's current recurrence.
func choicesFromDraft(d *service.Draft, opts []domain.MonthlyAnchor) editorChoices {
	c := editorChoices{Unit: domain.UnitWeek, Interval: "1"}
	rec, ok := d.Recurrence.Get()
	if !ok {
		return c
	}
	c.Enabled = true
	c.Unit = rec.Unit()
	c.Interval = strconv.Itoa(rec.Interval)
	c.Until = rec.EndDate.Format(time.DateOnly)

	switch a := rec.Anchors.(type) {
	case domain.WeekAnchors:
		c.Weekdays = slices.Clone(a.Days)
	case domain.DayAnchors:
		for _, t := range a.Times {
			if !t.Equal(d.Reference) {
				c.Times = append(c.Times, t)
			}
		}
	case domain.MonthAnchors:
		c.Monthly = max(slices.Index(opts, a.Option), 0)
	}
	if len(c.Weekdays) == 0 {
		c.Weekdays = []time.Weekday{d.Reference.Weekday()}
	}
	return c
}

func newEditorForm(slots []time.Time, opts []domain.MonthlyAnchor, c *editorChoices) *huh.Form {
	disabled := func() bool { return !c.Enabled }
	notUnit := func(u domain.Unit) func() bool {
		return func() bool { return !c.Enabled || c.Unit != u }
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Repeat this reminder?").
				Affirmative("Repeat").
				Negative("Once").
				Value(&c.Enabled),
		),
		huh.NewGroup(
			unitSelect(&c.Unit),
			intervalInput(&c.Interval),
		).WithHideFunc(disabled),
		huh.NewGroup(weekdayMultiSelect(&c.Weekdays)).WithHideFunc(notUnit(domain.UnitWeek)),
		huh.NewGroup(slotMultiSelect(slots, &c.Times)).WithHideFunc(notUnit(domain.UnitDay)),
		huh.NewGroup(monthlySelect(opts, &c.Monthly)).WithHideFunc(notUnit(domain.UnitMonth)),
		huh.NewGroup(
			dateInput("Until (YYYY-MM-DD, blank keeps the default)", c.Until, &c.Until),
		).WithHideFunc(disabled),
	).WithTheme(careminderHuhTheme()).WithShowHelp(true)
}

// applyChoices turns the form result into editor events, in the same order
// the plan command uses.
func applyChoices(ctx context.Context, app *App, draft *service.Draft, slots []time.Time, opts []domain.MonthlyAnchor, c editorChoices) (*service.Draft, error) {
	if !c.Enabled {
		return app.Editor.Disable(ctx, draft.ID)
	}

	d, err := app.Editor.Get(ctx, draft.ID)
	if err != nil {
		return nil, err
	}
	rec, _ := d.Recurrence.Get()
	if rec.Unit() != c.Unit {
		if d, err = app.Editor.Apply(ctx, d.ID, recurrence.ChangeUnit{Unit: c.Unit}); err != nil {
			return nil, err
		}
	}

	interval, err := strconv.Atoi(c.Interval)
	if err != nil {
		return nil, fmt.Errorf("interval %q: %w", c.Interval, domain.ErrInvalidTransition)
	}
	if d, err = app.Editor.Apply(ctx, d.ID, recurrence.SetInterval{N: interval}); err != nil {
		return nil, err
	}

	rec, _ = d.Recurrence.Get()
	var events []recurrence.Event
	switch a := rec.Anchors.(type) {
	case domain.WeekAnchors:
		events = weekdayToggles(a.Days, c.Weekdays)
	case domain.DayAnchors:
		for _, s := range slots[1:] {
			if a.Contains(s) != containsTime(c.Times, s) {
				events = append(events, recurrence.ToggleTime{At: s})
			}
		}
	case domain.MonthAnchors:
		if c.Monthly >= 0 && c.Monthly < len(opts) {
			events = append(events, recurrence.SetMonthAnchor{Option: opts[c.Monthly]})
		}
	}
	if c.Until != "" {
		until, err := parseDay(c.Until, app.location())
		if err != nil {
			return nil, err
		}
		events = append(events, recurrence.SetEndDate{Date: until})
	}
	return applyEvents(ctx, app.Editor, d.ID, events)
}

type editorKeyMap struct {
	Cancel key.Binding
}

var defaultEditorKeys = editorKeyMap{
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// editorModel runs the form as a standalone program and quits once it is
// submitted or cancelled.
type editorModel struct {
	form      *huh.Form
	keys      editorKeyMap
	cancelled bool
}

func newEditorModel(form *huh.Form) *editorModel {
	return &editorModel{form: form, keys: defaultEditorKeys}
}

func (m *editorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.cancelled = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, tea.Quit
	case huh.StateAborted:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *editorModel) View() string {
	if m.cancelled || m.form.State != huh.StateNormal {
		return ""
	}
	return m.form.View()
}
