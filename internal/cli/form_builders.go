package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2025-06-30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// intervalInput returns a huh.Input for the "every N" field.
func intervalInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Every").
		Description("How many units between reminders (1-999)").
		Placeholder("1").
		CharLimit(3).
		Value(value).
		Validate(validateInterval)
}

func unitSelect(value *domain.Unit) *huh.Select[domain.Unit] {
	options := make([]huh.Option[domain.Unit], 0, len(domain.Units))
	for _, u := range domain.Units {
		options = append(options, huh.NewOption(u.Title(2), u))
	}
	return huh.NewSelect[domain.Unit]().
		Title("Repeat").
		Options(options...).
		Value(value)
}

func weekdayMultiSelect(value *[]time.Weekday) *huh.MultiSelect[time.Weekday] {
	options := make([]huh.Option[time.Weekday], 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		options = append(options, huh.NewOption(wd.String(), wd).Selected(containsWeekday(*value, wd)))
	}
	return huh.NewMultiSelect[time.Weekday]().
		Title("On").
		Options(options...).
		Value(value).
		Validate(validateWeekdays)
}

// slotMultiSelect offers every slot after the start time; the start time
// itself is always part of a daily recurrence.
func slotMultiSelect(slots []time.Time, value *[]time.Time) *huh.MultiSelect[time.Time] {
	options := make([]huh.Option[time.Time], 0, len(slots))
	for i, s := range slots {
		if i == 0 {
			continue
		}
		options = append(options, huh.NewOption(recurrence.SlotLabel(s), s).Selected(containsTime(*value, s)))
	}
	title := "Also at"
	if len(slots) > 0 {
		title = fmt.Sprintf("Also at (%s is always included)", recurrence.SlotLabel(slots[0]))
	}
	return huh.NewMultiSelect[time.Time]().
		Title(title).
		Options(options...).
		Height(8).
		Value(value)
}

func monthlySelect(opts []domain.MonthlyAnchor, value *int) *huh.Select[int] {
	options := make([]huh.Option[int], 0, len(opts))
	for i, o := range opts {
		options = append(options, huh.NewOption(o.Label(), i))
	}
	return huh.NewSelect[int]().
		Title("Monthly").
		Options(options...).
		Value(value)
}

func containsTime(ts []time.Time, t time.Time) bool {
	for _, v := range ts {
		if v.Equal(t) {
			return true
		}
	}
	return false
}
