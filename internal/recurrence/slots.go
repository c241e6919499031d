package recurrence

import "time"

// DefaultSlotMinutes is the granularity of DailySlots when none is configured.
const DefaultSlotMinutes = 60

// DailySlots returns ref followed by every granularityMinutes step up to and
// including the following midnight. The first element is always ref itself.
func DailySlots(ref time.Time, granularityMinutes int) []time.Time {
	if granularityMinutes <= 0 {
		granularityMinutes = DefaultSlotMinutes
	}
	step := time.Duration(granularityMinutes) * time.Minute
	end := startOfDay(ref).AddDate(0, 0, 1)

	slots := make([]time.Time, 0, 24*60/granularityMinutes+1)
	for cur := ref; !cur.After(end); cur = cur.Add(step) {
		slots = append(slots, cur)
	}
	return slots
}

// sameClock compares the wall-clock time of day, ignoring the date.
func sameClock(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	return ah == bh && am == bm && as == bs && a.Nanosecond() == b.Nanosecond()
}

func containsInstant(ts []time.Time, t time.Time) bool {
	for _, v := range ts {
		if v.Equal(t) {
			return true
		}
	}
	return false
}
