package domain

import (
	"fmt"
	"time"
)

type MonthlyKind string

const (
	MonthlyDayOfMonth  MonthlyKind = "day_of_month"
	MonthlyLastDay     MonthlyKind = "last_day"
	MonthlyNthWeekday  MonthlyKind = "nth_weekday"
	MonthlyLastWeekday MonthlyKind = "last_weekday"
)

// MonthlyAnchor is one "monthly occurrence" rule. Only the fields that belong
// to Kind are set, so two anchors are equal exactly when == says so.
type MonthlyAnchor struct {
	Kind       MonthlyKind
	Day        int
	WeekNumber int
	Weekday    time.Weekday
}

// DayOfMonth repeats on the same calendar day each month.
func DayOfMonth(day int) MonthlyAnchor {
	return MonthlyAnchor{Kind: MonthlyDayOfMonth, Day: day}
}

// LastDayOfMonth repeats on the final day of each month.
func LastDayOfMonth() MonthlyAnchor {
	return MonthlyAnchor{Kind: MonthlyLastDay}
}

// NthWeekday repeats on the weekNumber-th occurrence of wd.
func NthWeekday(weekNumber int, wd time.Weekday) MonthlyAnchor {
	return MonthlyAnchor{Kind: MonthlyNthWeekday, WeekNumber: weekNumber, Weekday: wd}
}

// LastWeekday repeats on the final occurrence of wd.
func LastWeekday(wd time.Weekday) MonthlyAnchor {
	return MonthlyAnchor{Kind: MonthlyLastWeekday, Weekday: wd}
}

// Label is the display title of the anchor.
func (a MonthlyAnchor) Label() string {
	switch a.Kind {
	case MonthlyDayOfMonth:
		return fmt.Sprintf("Monthly on %s day", Ordinal(a.Day))
	case MonthlyLastDay:
		return "Last day of the month"
	case MonthlyNthWeekday:
		return fmt.Sprintf("Monthly on %s %s", Ordinal(a.WeekNumber), a.Weekday)
	case MonthlyLastWeekday:
		return fmt.Sprintf("Monthly on last %s", a.Weekday)
	default:
		return "Unknown monthly rule"
	}
}

func (a MonthlyAnchor) String() string {
	return a.Label()
}

// Ordinal formats n as "1st", "2nd", "3rd", "11th", ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
