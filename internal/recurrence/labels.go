package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
)

// SlotLabel formats a time slot as "09:00 AM".
func SlotLabel(t time.Time) string {
	return t.Format("03:04 PM")
}

// WeekdayInitial is the one-letter weekday used on compact pickers.
func WeekdayInitial(wd time.Weekday) string {
	return wd.String()[:1]
}

// Describe renders rec as a single sentence, for example
// "Every 2 Weeks on Mon, Wed until 2025-01-31".
func Describe(rec domain.Recurrence) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Every %d %s", rec.Interval, rec.Unit().Title(rec.Interval))

	switch a := rec.Anchors.(type) {
	case domain.DayAnchors:
		labels := make([]string, 0, len(a.Times))
		for _, t := range a.Times {
			labels = append(labels, SlotLabel(t))
		}
		if len(labels) > 0 {
			b.WriteString(" at " + strings.Join(labels, ", "))
		}
	case domain.WeekAnchors:
		days := make([]string, 0, len(a.Days))
		for _, wd := range a.Days {
			days = append(days, wd.String()[:3])
		}
		b.WriteString(" on " + strings.Join(days, ", "))
	case domain.MonthAnchors:
		b.WriteString(", " + strings.ToLower(a.Option.Label()[:1]) + a.Option.Label()[1:])
	}

	if !rec.EndDate.IsZero() {
		b.WriteString(" until " + rec.EndDate.Format(time.DateOnly))
	}
	return b.String()
}
