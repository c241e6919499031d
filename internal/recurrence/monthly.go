package recurrence

import (
	"slices"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
)

// MonthlyAnchors returns the monthly options that make sense for ref, in
// display order:
//  1. same day of month (always present)
//  2. last day of month, when ref is the month's last day
//  3. Nth weekday, unless the month spans six calendar rows
//  4. last weekday, when ref falls in the month's final seven days
func MonthlyAnchors(ref time.Time) []domain.MonthlyAnchor {
	wd := ref.Weekday()
	first := startOfMonth(ref)
	lastDay := daysInMonth(ref)

	opts := make([]domain.MonthlyAnchor, 0, 4)
	opts = append(opts, domain.DayOfMonth(ref.Day()))

	if ref.Day() == lastDay {
		opts = append(opts, domain.LastDayOfMonth())
	}

	if weekOfMonth(lastDay, first.Weekday()) < 6 {
		week := weekOfMonth(ref.Day(), first.Weekday())
		// The first row only counts for wd if wd actually occurs in it.
		if first.Weekday() > wd {
			week--
		}
		opts = append(opts, domain.NthWeekday(week, wd))
	}

	if ref.Day() > lastDay-7 {
		opts = append(opts, domain.LastWeekday(wd))
	}

	return opts
}

// IsMonthlyOption reports whether a is one of MonthlyAnchors(ref).
func IsMonthlyOption(ref time.Time, a domain.MonthlyAnchor) bool {
	return slices.Contains(MonthlyAnchors(ref), a)
}

// weekOfMonth is the 1-based calendar row (weeks starting Sunday) that holds
// day, given the weekday of the 1st.
func weekOfMonth(day int, firstWeekday time.Weekday) int {
	return (day + int(firstWeekday) + 6) / 7
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
