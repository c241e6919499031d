package testutil

import (
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
)

// Date builds a UTC time; tests use it for reference dates.
func Date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// Recurrence options
type RecurrenceOption func(*domain.Recurrence)

func WithInterval(n int) RecurrenceOption {
	return func(r *domain.Recurrence) {
		r.Interval = n
	}
}

func WithEndDate(d time.Time) RecurrenceOption {
	return func(r *domain.Recurrence) {
		r.EndDate = d
	}
}

func WithWeekdays(days ...time.Weekday) RecurrenceOption {
	return func(r *domain.Recurrence) {
		r.Anchors = domain.WeekAnchors{Days: days}
	}
}

func WithTimes(times ...time.Time) RecurrenceOption {
	return func(r *domain.Recurrence) {
		r.Anchors = domain.DayAnchors{Times: times}
	}
}

func WithMonthly(a domain.MonthlyAnchor) RecurrenceOption {
	return func(r *domain.Recurrence) {
		r.Anchors = domain.MonthAnchors{Option: a}
	}
}

func WithYearly() RecurrenceOption {
	return func(r *domain.Recurrence) {
		r.Anchors = domain.YearAnchors{}
	}
}

// NewTestRecurrence returns a weekly recurrence on ref's weekday, ending a
// year after ref, with opts applied on top.
func NewTestRecurrence(ref time.Time, opts ...RecurrenceOption) domain.Recurrence {
	r := domain.Recurrence{
		Interval: 1,
		EndDate:  ref.AddDate(1, 0, 0),
		Anchors:  domain.WeekAnchors{Days: []time.Weekday{ref.Weekday()}},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
