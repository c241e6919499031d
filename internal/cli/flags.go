package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/spf13/pflag"
)

var referenceLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// parseReference reads a date with optional time in loc. An empty string
// means the current minute.
func parseReference(s string, loc *time.Location, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), 0, 0, loc), nil
	}
	for _, layout := range referenceLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

var clockLayouts = []string{"15:04", "3:04PM", "03:04 PM", "3:04 PM"}

// parseClock returns the hour and minute of a wall-clock time like "14:30"
// or "02:30 PM".
func parseClock(s string) (hour, minute int, err error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, perr := time.Parse(layout, v); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid time %q (use HH:MM)", s)
}

// weekdayListValue collects repeated --weekday flags.
type weekdayListValue struct {
	days []time.Weekday
}

var _ pflag.Value = (*weekdayListValue)(nil)

func (v *weekdayListValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		wd, err := domain.ParseWeekday(part)
		if err != nil {
			return err
		}
		v.days = append(v.days, wd)
	}
	return nil
}

func (v *weekdayListValue) String() string {
	names := make([]string, 0, len(v.days))
	for _, wd := range v.days {
		names = append(names, wd.String()[:3])
	}
	return strings.Join(names, ",")
}

func (v *weekdayListValue) Type() string { return "weekday" }

type unitValue struct {
	unit domain.Unit
}

var _ pflag.Value = (*unitValue)(nil)

func (v *unitValue) Set(s string) error {
	u, err := domain.ParseUnit(s)
	if err != nil {
		return err
	}
	v.unit = u
	return nil
}

func (v *unitValue) String() string { return string(v.unit) }

func (v *unitValue) Type() string { return "unit" }
