package recurrence

import (
	"fmt"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/teambition/rrule-go"
)

// DefaultPreviewLimit caps Occurrences when the caller passes no limit.
const DefaultPreviewLimit = 10

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RRuleOptions translates rec into rrule options ending with the last second
// of rec.EndDate. A daily recurrence yields one rule per selected time; every
// other unit yields a single rule starting at ref.
func RRuleOptions(rec domain.Recurrence, ref time.Time) ([]rrule.ROption, error) {
	end := rec.EndDate
	base := rrule.ROption{
		Dtstart:  ref,
		Interval: rec.Interval,
		Until:    time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location()),
		Wkst:     rrule.SU,
	}

	switch a := rec.Anchors.(type) {
	case domain.DayAnchors:
		opts := make([]rrule.ROption, 0, len(a.Times))
		for _, t := range a.Times {
			opt := base
			opt.Freq = rrule.DAILY
			opt.Dtstart = t
			opts = append(opts, opt)
		}
		return opts, nil
	case domain.WeekAnchors:
		base.Freq = rrule.WEEKLY
		for _, wd := range a.Days {
			base.Byweekday = append(base.Byweekday, rruleWeekdays[wd])
		}
	case domain.MonthAnchors:
		base.Freq = rrule.MONTHLY
		switch a.Option.Kind {
		case domain.MonthlyDayOfMonth:
			base.Bymonthday = []int{a.Option.Day}
		case domain.MonthlyLastDay:
			base.Bymonthday = []int{-1}
		case domain.MonthlyNthWeekday:
			base.Byweekday = []rrule.Weekday{rruleWeekdays[a.Option.Weekday].Nth(a.Option.WeekNumber)}
		case domain.MonthlyLastWeekday:
			base.Byweekday = []rrule.Weekday{rruleWeekdays[a.Option.Weekday].Nth(-1)}
		default:
			return nil, fmt.Errorf("unknown monthly rule %q", a.Option.Kind)
		}
	case domain.YearAnchors:
		base.Freq = rrule.YEARLY
	default:
		return nil, fmt.Errorf("recurrence has no unit")
	}
	return []rrule.ROption{base}, nil
}

// Occurrences expands rec into at most limit concrete start times, beginning
// at ref and in ascending order. It fails with ErrDegenerateDateRange when rec
// ends before ref.
func Occurrences(rec domain.Recurrence, ref time.Time, limit int) ([]time.Time, error) {
	if err := CheckDateRange(rec, ref); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	opts, err := RRuleOptions(rec, ref)
	if err != nil {
		return nil, err
	}

	var set rrule.Set
	for _, opt := range opts {
		r, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, fmt.Errorf("building rrule: %w", err)
		}
		set.RRule(r)
	}

	out := make([]time.Time, 0, limit)
	next := set.Iterator()
	for len(out) < limit {
		t, ok := next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
