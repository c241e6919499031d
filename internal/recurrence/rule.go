package recurrence

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/samber/mo"
)

// Rule keeps a Recurrence consistent as events arrive. It holds no state;
// the zero value uses DefaultEndDateCaps and DefaultSlotMinutes.
type Rule struct {
	MaxEndDate  EndDateFunc
	SlotMinutes int
}

type RuleOption func(*Rule)

func WithEndDateFunc(fn EndDateFunc) RuleOption {
	return func(r *Rule) {
		r.MaxEndDate = fn
	}
}

func WithSlotMinutes(minutes int) RuleOption {
	return func(r *Rule) {
		r.SlotMinutes = minutes
	}
}

func NewRule(opts ...RuleOption) Rule {
	r := Rule{
		MaxEndDate:  DefaultEndDateCaps().MaxEndDate,
		SlotMinutes: DefaultSlotMinutes,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Next computes the configuration that follows prior once ev is applied at
// reference date ref. prior is never modified; on error the zero Recurrence
// is returned and the caller keeps its previous value.
func (r Rule) Next(prior mo.Option[domain.Recurrence], ev Event, ref time.Time) (domain.Recurrence, error) {
	if e, ok := ev.(Enable); ok {
		return r.enable(prior, e, ref)
	}

	cur, ok := prior.Get()
	if !ok {
		return domain.Recurrence{}, fmt.Errorf("%s: %w", ev.EventName(), domain.ErrNoRecurrence)
	}
	if cur.Anchors == nil {
		return domain.Recurrence{}, invalid("%s: configuration has no unit", ev.EventName())
	}
	next := cur.Clone()

	switch e := ev.(type) {
	case ChangeUnit:
		if !domain.ValidUnits[string(e.Unit)] {
			return domain.Recurrence{}, invalid("change unit: unknown unit %q", e.Unit)
		}
		next.EndDate = r.maxEndDate(e.Unit, ref)
		next.Anchors = r.defaultAnchors(e.Unit, ref)
		return next, nil

	case ChangeReferenceDate:
		next.Anchors = r.repairAnchors(next.Anchors, e.Date)
		return next, nil

	case ToggleWeekday:
		week, ok := next.Anchors.(domain.WeekAnchors)
		if !ok {
			return domain.Recurrence{}, invalid("toggle weekday: unit is %s, not week", next.Unit())
		}
		if !domain.ValidWeekday(int(e.Weekday)) {
			return domain.Recurrence{}, invalid("toggle weekday: %d is not a weekday", e.Weekday)
		}
		days := toggle(week.Days, e.Weekday, func(a, b time.Weekday) bool { return a == b })
		if len(days) == 0 {
			return domain.Recurrence{}, invalid("toggle weekday: cannot remove the last weekday")
		}
		slices.Sort(days)
		next.Anchors = domain.WeekAnchors{Days: days}
		return next, nil

	case ToggleTime:
		day, ok := next.Anchors.(domain.DayAnchors)
		if !ok {
			return domain.Recurrence{}, invalid("toggle time: unit is %s, not day", next.Unit())
		}
		if e.At.Equal(ref) {
			// The start time is always selected.
			return next, nil
		}
		if !containsInstant(DailySlots(ref, r.slotMinutes()), e.At) {
			return domain.Recurrence{}, invalid("toggle time: %s is not a slot of %s",
				e.At.Format(time.DateTime), ref.Format(time.DateTime))
		}
		times := toggle(day.Times, e.At, time.Time.Equal)
		slices.SortFunc(times, time.Time.Compare)
		next.Anchors = domain.DayAnchors{Times: times}
		return next, nil

	case SetMonthAnchor:
		if next.Unit() != domain.UnitMonth {
			return domain.Recurrence{}, invalid("set month anchor: unit is %s, not month", next.Unit())
		}
		if !IsMonthlyOption(ref, e.Option) {
			return domain.Recurrence{}, invalid("set month anchor: %q is not available on %s",
				e.Option.Label(), ref.Format(time.DateOnly))
		}
		next.Anchors = domain.MonthAnchors{Option: e.Option}
		return next, nil

	case SetEndDate:
		next.EndDate = e.Date
		return next, nil

	case SetInterval:
		if e.N < 1 {
			return domain.Recurrence{}, invalid("set interval: %d is below 1", e.N)
		}
		next.Interval = e.N
		return next, nil

	default:
		return domain.Recurrence{}, invalid("unsupported event %T", ev)
	}
}

func (r Rule) enable(prior mo.Option[domain.Recurrence], e Enable, ref time.Time) (domain.Recurrence, error) {
	s, suggested := e.Suggestion.Get()
	if !suggested {
		if cur, ok := prior.Get(); ok {
			return cur.Clone(), nil
		}
		return domain.Recurrence{
			Interval: 1,
			EndDate:  r.maxEndDate(domain.UnitWeek, ref),
			Anchors:  domain.WeekAnchors{Days: []time.Weekday{ref.Weekday()}},
		}, nil
	}

	if !domain.ValidUnits[string(s.Unit)] {
		return domain.Recurrence{}, invalid("enable: suggested unit %q is unknown", s.Unit)
	}
	interval := s.Interval
	if interval < 1 {
		interval = 1
	}
	return domain.Recurrence{
		Interval: interval,
		EndDate:  r.maxEndDate(s.Unit, ref),
		Anchors:  r.defaultAnchors(s.Unit, ref),
	}, nil
}

// defaultAnchors is the anchor a freshly chosen unit starts with.
func (r Rule) defaultAnchors(unit domain.Unit, ref time.Time) domain.Anchors {
	switch unit {
	case domain.UnitDay:
		return domain.DayAnchors{Times: []time.Time{ref}}
	case domain.UnitWeek:
		return domain.WeekAnchors{Days: []time.Weekday{ref.Weekday()}}
	case domain.UnitMonth:
		return domain.MonthAnchors{Option: MonthlyAnchors(ref)[0]}
	default:
		return domain.YearAnchors{}
	}
}

// repairAnchors re-derives unit-specific state for a new reference date,
// keeping whatever the user picked that is still valid.
func (r Rule) repairAnchors(anchors domain.Anchors, date time.Time) domain.Anchors {
	switch a := anchors.(type) {
	case domain.DayAnchors:
		slots := DailySlots(date, r.slotMinutes())
		times := []time.Time{date}
		for _, prev := range a.Times {
			for _, slot := range slots {
				if sameClock(prev, slot) {
					if !containsInstant(times, slot) {
						times = append(times, slot)
					}
					break
				}
			}
		}
		slices.SortFunc(times, time.Time.Compare)
		return domain.DayAnchors{Times: times}

	case domain.MonthAnchors:
		opts := MonthlyAnchors(date)
		if slices.Contains(opts, a.Option) {
			return a
		}
		// A day-of-month choice snaps back to the new day of month; any
		// other rule moves to the next option when there is one.
		idx := 1
		if a.Option.Kind == domain.MonthlyDayOfMonth || idx >= len(opts) {
			idx = 0
		}
		return domain.MonthAnchors{Option: opts[idx]}

	default:
		return anchors
	}
}

func (r Rule) maxEndDate(unit domain.Unit, ref time.Time) time.Time {
	if r.MaxEndDate == nil {
		return DefaultEndDateCaps().MaxEndDate(unit, ref)
	}
	return r.MaxEndDate(unit, ref)
}

func (r Rule) slotMinutes() int {
	if r.SlotMinutes <= 0 {
		return DefaultSlotMinutes
	}
	return r.SlotMinutes
}

// toggle returns a copy of set with v removed if present, appended otherwise.
func toggle[T any](set []T, v T, eq func(a, b T) bool) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, x := range set {
		if eq(x, v) {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidTransition, fmt.Sprintf(format, args...))
}
