package recurrence

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyAnchors_LeapDayIsLastDay(t *testing.T) {
	opts := MonthlyAnchors(testutil.Date(2024, time.February, 29, 9, 0))
	assert.Equal(t, []domain.MonthlyAnchor{
		domain.DayOfMonth(29),
		domain.LastDayOfMonth(),
		domain.NthWeekday(5, time.Thursday),
		domain.LastWeekday(time.Thursday),
	}, opts)
}

func TestMonthlyAnchors_LastWeekWindow(t *testing.T) {
	opts := MonthlyAnchors(testutil.Date(2024, time.January, 26, 9, 0))
	assert.Equal(t, []domain.MonthlyAnchor{
		domain.DayOfMonth(26),
		domain.NthWeekday(4, time.Friday),
		domain.LastWeekday(time.Friday),
	}, opts)
}

func TestMonthlyAnchors_SixRowMonthDropsNthWeekday(t *testing.T) {
	// March 2024 starts on a Friday and spans six Sunday-first rows.
	opts := MonthlyAnchors(testutil.Date(2024, time.March, 15, 9, 0))
	assert.Equal(t, []domain.MonthlyAnchor{domain.DayOfMonth(15)}, opts)

	opts = MonthlyAnchors(testutil.Date(2024, time.March, 31, 9, 0))
	assert.Equal(t, []domain.MonthlyAnchor{
		domain.DayOfMonth(31),
		domain.LastDayOfMonth(),
		domain.LastWeekday(time.Sunday),
	}, opts)
}

func TestMonthlyAnchors_FirstPartialWeekDoesNotCount(t *testing.T) {
	// 2024-01-01 is a Monday, so Sunday the 7th sits in row 2 but is the first Sunday.
	opts := MonthlyAnchors(testutil.Date(2024, time.January, 7, 9, 0))
	assert.Contains(t, opts, domain.NthWeekday(1, time.Sunday))

	opts = MonthlyAnchors(testutil.Date(2024, time.January, 2, 9, 0))
	assert.Contains(t, opts, domain.NthWeekday(1, time.Tuesday))
}

func TestMonthlyAnchors_LastWeekdayBoundary(t *testing.T) {
	// January has 31 days: the 25th is the first day of the final seven.
	assert.NotContains(t, MonthlyAnchors(testutil.Date(2024, time.January, 24, 0, 0)), domain.LastWeekday(time.Wednesday))
	assert.Contains(t, MonthlyAnchors(testutil.Date(2024, time.January, 25, 0, 0)), domain.LastWeekday(time.Thursday))
}

// TestMonthlyAnchors_Invariants property-tests the option list over random dates.
func TestMonthlyAnchors_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := testutil.Date(2000, time.January, 1, 0, 0)

	for trial := 0; trial < 500; trial++ {
		ref := base.AddDate(0, 0, rng.Intn(365*40)).Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		opts := MonthlyAnchors(ref)

		// Invariant 1: day-of-month is always first.
		if assert.NotEmpty(t, opts) {
			assert.Equal(t, domain.DayOfMonth(ref.Day()), opts[0], "trial %d: %s", trial, ref)
		}

		isLast := ref.AddDate(0, 0, 1).Month() != ref.Month()
		assert.Equal(t, isLast, IsMonthlyOption(ref, domain.LastDayOfMonth()), "trial %d: %s", trial, ref)

		for _, o := range opts {
			switch o.Kind {
			case domain.MonthlyNthWeekday:
				// Invariant 2: the week number is the occurrence count of the weekday.
				assert.Equal(t, (ref.Day()-1)/7+1, o.WeekNumber, "trial %d: %s", trial, ref)
				assert.Equal(t, ref.Weekday(), o.Weekday)
			case domain.MonthlyLastWeekday:
				// Invariant 3: no later occurrence of the weekday in the month.
				assert.NotEqual(t, ref.Month(), ref.AddDate(0, 0, 7).Month(), "trial %d: %s", trial, ref)
			}
		}
	}
}
