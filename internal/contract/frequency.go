package contract

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
)

// lastDayTitle is how older payloads mark the last-day rule, which they
// store as day 31.
const lastDayTitle = "Last day of the month"

// legacyLastWeek is the week number older payloads use for "last weekday".
const legacyLastWeek = 6

// MonthlyPayload is the on_month object. Kind is optional; payloads without
// it are read the way the older schema wrote them.
type MonthlyPayload struct {
	Kind       string `json:"kind,omitempty" validate:"omitempty,oneof=day_of_month last_day nth_weekday last_weekday"`
	Title      string `json:"title"`
	Day        *int   `json:"day,omitempty" validate:"omitempty,min=1,max=31"`
	WeekNumber *int   `json:"weekNumber,omitempty" validate:"omitempty,min=1,max=6"`
	WeekDay    *int   `json:"weekDay,omitempty" validate:"omitempty,min=0,max=6"`
}

// FrequencyPayload is the wire form of an active recurrence.
type FrequencyPayload struct {
	Frequency     int             `json:"frequency" validate:"min=1"`
	FrequencyType string          `json:"frequency_type" validate:"required,oneof=day week month year"`
	OnDay         []time.Time     `json:"on_day,omitempty" validate:"required_if=FrequencyType day"`
	OnWeek        []int           `json:"on_week,omitempty" validate:"required_if=FrequencyType week,dive,min=0,max=6"`
	OnMonth       *MonthlyPayload `json:"on_month,omitempty" validate:"required_if=FrequencyType month"`
	EndDate       time.Time       `json:"end_date" validate:"required"`
	Until         *time.Time      `json:"until,omitempty"`
}

// FromRecurrence encodes rec. Only the anchor field matching the unit is set.
func FromRecurrence(rec domain.Recurrence) FrequencyPayload {
	p := FrequencyPayload{
		Frequency:     rec.Interval,
		FrequencyType: string(rec.Unit()),
		EndDate:       rec.EndDate,
	}
	switch a := rec.Anchors.(type) {
	case domain.DayAnchors:
		p.OnDay = append([]time.Time(nil), a.Times...)
	case domain.WeekAnchors:
		p.OnWeek = make([]int, 0, len(a.Days))
		for _, wd := range a.Days {
			p.OnWeek = append(p.OnWeek, int(wd))
		}
	case domain.MonthAnchors:
		m := FromMonthlyAnchor(a.Option)
		p.OnMonth = &m
	}
	return p
}

// FromMonthlyAnchor encodes a so that older readers still understand it.
func FromMonthlyAnchor(a domain.MonthlyAnchor) MonthlyPayload {
	m := MonthlyPayload{Kind: string(a.Kind), Title: a.Label()}
	switch a.Kind {
	case domain.MonthlyDayOfMonth:
		m.Day = intPtr(a.Day)
	case domain.MonthlyLastDay:
		m.Day = intPtr(31)
	case domain.MonthlyNthWeekday:
		m.WeekNumber = intPtr(a.WeekNumber)
		m.WeekDay = intPtr(int(a.Weekday))
	case domain.MonthlyLastWeekday:
		m.WeekNumber = intPtr(legacyLastWeek)
		m.WeekDay = intPtr(int(a.Weekday))
	}
	return m
}

// ToMonthlyAnchor decodes m, inferring the kind when it is absent.
func (m MonthlyPayload) ToMonthlyAnchor() (domain.MonthlyAnchor, error) {
	kind := domain.MonthlyKind(m.Kind)
	if kind == "" {
		switch {
		case m.WeekNumber != nil && *m.WeekNumber == legacyLastWeek:
			kind = domain.MonthlyLastWeekday
		case m.WeekNumber != nil:
			kind = domain.MonthlyNthWeekday
		case m.Day != nil && m.Title == lastDayTitle:
			kind = domain.MonthlyLastDay
		default:
			kind = domain.MonthlyDayOfMonth
		}
	}

	switch kind {
	case domain.MonthlyDayOfMonth:
		if m.Day == nil {
			return domain.MonthlyAnchor{}, fmt.Errorf("on_month: day is required")
		}
		return domain.DayOfMonth(*m.Day), nil
	case domain.MonthlyLastDay:
		return domain.LastDayOfMonth(), nil
	case domain.MonthlyNthWeekday, domain.MonthlyLastWeekday:
		if m.WeekDay == nil {
			return domain.MonthlyAnchor{}, fmt.Errorf("on_month: weekDay is required")
		}
		wd := time.Weekday(*m.WeekDay)
		if kind == domain.MonthlyLastWeekday {
			return domain.LastWeekday(wd), nil
		}
		if m.WeekNumber == nil {
			return domain.MonthlyAnchor{}, fmt.Errorf("on_month: weekNumber is required")
		}
		return domain.NthWeekday(*m.WeekNumber, wd), nil
	default:
		return domain.MonthlyAnchor{}, fmt.Errorf("on_month: unknown kind %q", m.Kind)
	}
}

// ToRecurrence validates p and converts it. Anchor fields that do not belong
// to frequency_type are rejected rather than dropped.
func (p FrequencyPayload) ToRecurrence() (domain.Recurrence, error) {
	if p.EndDate.IsZero() && p.Until != nil {
		p.EndDate = *p.Until
	}
	if err := ValidatePayload(p); err != nil {
		return domain.Recurrence{}, err
	}

	unit := domain.Unit(p.FrequencyType)
	stray := map[domain.Unit]bool{
		domain.UnitDay:   len(p.OnDay) > 0,
		domain.UnitWeek:  len(p.OnWeek) > 0,
		domain.UnitMonth: p.OnMonth != nil,
	}
	for u, set := range stray {
		if set && u != unit {
			return domain.Recurrence{}, fmt.Errorf("invalid payload: on_%s is not allowed for frequency_type %s", u, unit)
		}
	}

	rec := domain.Recurrence{Interval: p.Frequency, EndDate: p.EndDate}
	switch unit {
	case domain.UnitDay:
		rec.Anchors = domain.DayAnchors{Times: append([]time.Time(nil), p.OnDay...)}
	case domain.UnitWeek:
		days := make([]time.Weekday, 0, len(p.OnWeek))
		for _, d := range p.OnWeek {
			days = append(days, time.Weekday(d))
		}
		rec.Anchors = domain.WeekAnchors{Days: days}
	case domain.UnitMonth:
		a, err := p.OnMonth.ToMonthlyAnchor()
		if err != nil {
			return domain.Recurrence{}, err
		}
		rec.Anchors = domain.MonthAnchors{Option: a}
	case domain.UnitYear:
		rec.Anchors = domain.YearAnchors{}
	}
	return rec, nil
}

// DecodeFrequency reads one FrequencyPayload from r.
func DecodeFrequency(r io.Reader) (FrequencyPayload, error) {
	var p FrequencyPayload
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return FrequencyPayload{}, fmt.Errorf("decoding frequency payload: %w", err)
	}
	return p, nil
}

func intPtr(n int) *int {
	return &n
}
