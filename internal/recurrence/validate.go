package recurrence

import (
	"fmt"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
)

// Validate checks rec against the invariants that hold for reference date ref.
// It does not compare EndDate with ref; see CheckDateRange.
func (r Rule) Validate(rec domain.Recurrence, ref time.Time) error {
	if rec.Interval < 1 {
		return invalid("interval %d is below 1", rec.Interval)
	}
	if rec.EndDate.IsZero() {
		return invalid("end date is missing")
	}

	switch a := rec.Anchors.(type) {
	case domain.DayAnchors:
		if !a.Contains(ref) {
			return invalid("start time %s is not selected", ref.Format(time.DateTime))
		}
		slots := DailySlots(ref, r.slotMinutes())
		for _, t := range a.Times {
			if !containsInstant(slots, t) {
				return invalid("time %s is not a slot of %s", t.Format(time.DateTime), ref.Format(time.DateOnly))
			}
		}
	case domain.WeekAnchors:
		if len(a.Days) == 0 {
			return invalid("weekly recurrence needs at least one weekday")
		}
		for _, wd := range a.Days {
			if !domain.ValidWeekday(int(wd)) {
				return invalid("%d is not a weekday", wd)
			}
		}
	case domain.MonthAnchors:
		if !IsMonthlyOption(ref, a.Option) {
			return invalid("%q is not available on %s", a.Option.Label(), ref.Format(time.DateOnly))
		}
	case domain.YearAnchors:
	case nil:
		return invalid("unit is missing")
	default:
		return fmt.Errorf("unknown anchors %T", a)
	}
	return nil
}
