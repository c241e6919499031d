package recurrence

import (
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
)

// EndDateFunc returns the furthest end date allowed for unit when recurrence
// starts at ref.
type EndDateFunc func(unit domain.Unit, ref time.Time) time.Time

// EndDateCaps holds the recurrence horizon per unit, in months.
type EndDateCaps struct {
	DayMonths   int
	WeekMonths  int
	MonthMonths int
	YearMonths  int
}

// DefaultEndDateCaps returns the caps used when none are configured.
func DefaultEndDateCaps() EndDateCaps {
	return EndDateCaps{
		DayMonths:   3,
		WeekMonths:  12,
		MonthMonths: 24,
		YearMonths:  120,
	}
}

func (c EndDateCaps) months(unit domain.Unit) int {
	switch unit {
	case domain.UnitDay:
		return c.DayMonths
	case domain.UnitWeek:
		return c.WeekMonths
	case domain.UnitMonth:
		return c.MonthMonths
	case domain.UnitYear:
		return c.YearMonths
	default:
		return c.WeekMonths
	}
}

// MaxEndDate is an EndDateFunc. The result is a date at midnight; a day that
// does not exist in the target month is clamped to that month's last day.
func (c EndDateCaps) MaxEndDate(unit domain.Unit, ref time.Time) time.Time {
	return addMonthsClamped(startOfDay(ref), c.months(unit))
}

func addMonthsClamped(t time.Time, months int) time.Time {
	target := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	day := min(t.Day(), daysInMonth(target))
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, t.Location())
}

// CheckDateRange returns ErrDegenerateDateRange when rec ends on a day before ref.
func CheckDateRange(rec domain.Recurrence, ref time.Time) error {
	if startOfDay(rec.EndDate).Before(startOfDay(ref)) {
		return domain.ErrDegenerateDateRange
	}
	return nil
}
