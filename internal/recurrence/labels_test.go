package recurrence

import (
	"testing"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyAnchorLabels(t *testing.T) {
	assert.Equal(t, "Monthly on 26th day", domain.DayOfMonth(26).Label())
	assert.Equal(t, "Monthly on 1st day", domain.DayOfMonth(1).Label())
	assert.Equal(t, "Last day of the month", domain.LastDayOfMonth().Label())
	assert.Equal(t, "Monthly on 2nd Tuesday", domain.NthWeekday(2, time.Tuesday).Label())
	assert.Equal(t, "Monthly on last Friday", domain.LastWeekday(time.Friday).Label())
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "09:00 AM", SlotLabel(testutil.Date(2024, time.January, 1, 9, 0)))
	assert.Equal(t, "12:30 PM", SlotLabel(testutil.Date(2024, time.January, 1, 12, 30)))
	assert.Equal(t, "12:00 AM", SlotLabel(testutil.Date(2024, time.January, 2, 0, 0)))
}

func TestDescribe(t *testing.T) {
	ref := testutil.Date(2024, time.January, 1, 9, 0)
	end := testutil.WithEndDate(testutil.Date(2024, time.December, 31, 0, 0))

	assert.Equal(t, "Every 2 Weeks on Mon, Wed until 2024-12-31",
		Describe(testutil.NewTestRecurrence(ref, end, testutil.WithInterval(2), testutil.WithWeekdays(time.Monday, time.Wednesday))))
	assert.Equal(t, "Every 1 Day at 09:00 AM, 01:00 PM until 2024-12-31",
		Describe(testutil.NewTestRecurrence(ref, end, testutil.WithTimes(ref, testutil.Date(2024, time.January, 1, 13, 0)))))
	assert.Equal(t, "Every 1 Month, monthly on last Friday until 2024-12-31",
		Describe(testutil.NewTestRecurrence(ref, end, testutil.WithMonthly(domain.LastWeekday(time.Friday)))))
	assert.Equal(t, "Every 3 Years until 2024-12-31",
		Describe(testutil.NewTestRecurrence(ref, end, testutil.WithInterval(3), testutil.WithYearly())))
}
