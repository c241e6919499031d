package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit is the recurrence granularity.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

// Units lists every supported unit in display order.
var Units = []Unit{UnitDay, UnitWeek, UnitMonth, UnitYear}

// ValidUnits is the canonical set of accepted unit strings.
var ValidUnits = map[string]bool{
	"day": true, "week": true, "month": true, "year": true,
}

// ParseUnit accepts a unit name in any case, singular or plural.
func ParseUnit(s string) (Unit, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	if !ValidUnits[v] {
		return "", fmt.Errorf("unknown unit %q (expected day, week, month or year)", s)
	}
	return Unit(v), nil
}

// Title returns the capitalised unit name, pluralised for n != 1.
func (u Unit) Title(n int) string {
	if u == "" {
		return ""
	}
	name := strings.ToUpper(string(u[:1])) + string(u[1:])
	if n != 1 {
		name += "s"
	}
	return name
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts a weekday name ("mon", "Monday") or an index 0-6
// where 0 is Sunday.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if wd, ok := weekdayNames[v]; ok {
		return wd, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || !ValidWeekday(n) {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return time.Weekday(n), nil
}

// ValidWeekday reports whether n is a weekday index in 0..6.
func ValidWeekday(n int) bool {
	return n >= 0 && n <= 6
}
