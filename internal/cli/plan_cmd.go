package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/careminder/internal/cli/formatter"
	"github.com/alexanderramin/careminder/internal/contract"
	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/spf13/cobra"
)

type planFlags struct {
	date     string
	action   string
	suggest  string
	unit     unitValue
	every    int
	weekdays weekdayListValue
	at       []string
	monthly  int
	until    string
	moveTo   string
	asJSON   bool
	preview  int
}

func newPlanCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a recurrence from flags and print it",
		Long: `Build a recurrence by replaying edits against a fresh draft.

Edits are applied in a fixed order: enable (optionally from --action or
--suggest), --unit, --every, --weekday, --at toggles, --monthly, --move-to
and finally --until. --weekday lists the days wanted; --at toggles extra
start times. The first rejected edit aborts the plan.`,
		Example: `  careminder plan --date 2024-03-26 --unit week --weekday mon --weekday fri
  careminder plan --date "2024-03-26 21:00" --unit day --at 23:00 --preview 5
  careminder plan --date 2024-01-26 --unit month --monthly 2 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loc := app.location()

			ref, err := parseReference(f.date, loc, app.now())
			if err != nil {
				return err
			}
			suggestion, err := resolveSuggestion(ctx, app, f.action, f.suggest)
			if err != nil {
				return err
			}

			draft, err := app.Editor.Open(ctx, ref, suggestion)
			if err != nil {
				return err
			}
			id := draft.ID
			defer func() { _ = app.Editor.Close(ctx, id) }()

			apply := func(events ...recurrence.Event) error {
				draft, err = applyEvents(ctx, app.Editor, id, events)
				return err
			}

			if cmd.Flags().Changed("unit") {
				if err := apply(recurrence.ChangeUnit{Unit: f.unit.unit}); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("every") {
				if err := apply(recurrence.SetInterval{N: f.every}); err != nil {
					return err
				}
			}
			if len(f.weekdays.days) > 0 {
				rec, _ := draft.Recurrence.Get()
				week, ok := rec.Anchors.(domain.WeekAnchors)
				if !ok {
					return fmt.Errorf("--weekday: %w: unit is %s, not week", domain.ErrInvalidTransition, rec.Unit())
				}
				if err := apply(weekdayToggles(week.Days, f.weekdays.days)...); err != nil {
					return err
				}
			}
			if len(f.at) > 0 {
				slots, err := app.Editor.TimeSlots(ctx, id)
				if err != nil {
					return err
				}
				toggles := make([]recurrence.Event, 0, len(f.at))
				for _, s := range f.at {
					h, m, err := parseClock(s)
					if err != nil {
						return err
					}
					slot, ok := slotAt(slots, h, m)
					if !ok {
						return fmt.Errorf("--at %s: %w: no such slot after %s", s, domain.ErrInvalidTransition, ref.Format("15:04"))
					}
					toggles = append(toggles, recurrence.ToggleTime{At: slot})
				}
				if err := apply(toggles...); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("monthly") {
				opts := recurrence.MonthlyAnchors(ref)
				if f.monthly < 0 || f.monthly >= len(opts) {
					return fmt.Errorf("--monthly %d: choose 0-%d (see `careminder monthly --date %s`)",
						f.monthly, len(opts)-1, ref.Format(time.DateOnly))
				}
				if err := apply(recurrence.SetMonthAnchor{Option: opts[f.monthly]}); err != nil {
					return err
				}
			}
			if f.moveTo != "" {
				moved, err := parseReference(f.moveTo, loc, app.now())
				if err != nil {
					return err
				}
				if err := apply(recurrence.ChangeReferenceDate{Date: moved}); err != nil {
					return err
				}
			}
			if f.until != "" {
				until, err := parseDay(f.until, loc)
				if err != nil {
					return err
				}
				if err := apply(recurrence.SetEndDate{Date: until}); err != nil {
					return err
				}
			}

			rec, _ := draft.Recurrence.Get()
			if err := recurrence.CheckDateRange(rec, draft.Reference); err != nil {
				return err
			}

			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(contract.FromRecurrence(rec))
			}

			var preview []time.Time
			if f.preview > 0 {
				preview, err = app.Editor.Preview(ctx, draft.ID, f.preview)
				if err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecurrence(draft.Reference, rec, preview))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.date, "date", "", "reference date, optionally with time (default now)")
	flags.StringVar(&f.action, "action", "", "start from a catalog action's suggested frequency")
	flags.StringVar(&f.suggest, "suggest", "", `start from a suggestion payload, e.g. '{"frequency":2,"frequency_type":"week"}'`)
	flags.Var(&f.unit, "unit", "recurrence unit: day, week, month or year")
	flags.IntVar(&f.every, "every", 1, "repeat every N units")
	flags.Var(&f.weekdays, "weekday", "weekday to remind on (repeatable or comma separated, e.g. mon,fri)")
	flags.StringArrayVar(&f.at, "at", nil, "toggle a daily start time HH:MM (repeatable)")
	flags.IntVar(&f.monthly, "monthly", 0, "monthly rule index as listed by the monthly command")
	flags.StringVar(&f.until, "until", "", "end date (YYYY-MM-DD)")
	flags.StringVar(&f.moveTo, "move-to", "", "move the reference date before saving")
	flags.BoolVar(&f.asJSON, "json", false, "print the frequency payload as JSON")
	flags.IntVar(&f.preview, "preview", 0, "list the first N occurrences")
	cmd.MarkFlagsMutuallyExclusive("action", "suggest")

	return cmd
}
