package recurrence

import (
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/samber/mo"
)

// Event is a change request fed to Rule.Next.
type Event interface {
	EventName() string
}

// Enable turns recurrence on. With a suggestion its unit and interval are
// adopted; without one the recurrence defaults to weekly on the reference
// weekday.
type Enable struct {
	Suggestion mo.Option[domain.Suggestion]
}

type ChangeUnit struct {
	Unit domain.Unit
}

// ChangeReferenceDate fires when the externally owned start date moves.
type ChangeReferenceDate struct {
	Date time.Time
}

// ToggleWeekday adds or removes a weekday anchor (unit week).
type ToggleWeekday struct {
	Weekday time.Weekday
}

// ToggleTime adds or removes a time-of-day anchor (unit day).
type ToggleTime struct {
	At time.Time
}

type SetMonthAnchor struct {
	Option domain.MonthlyAnchor
}

type SetEndDate struct {
	Date time.Time
}

type SetInterval struct {
	N int
}

func (Enable) EventName() string              { return "enable" }
func (ChangeUnit) EventName() string          { return "change_unit" }
func (ChangeReferenceDate) EventName() string { return "change_reference_date" }
func (ToggleWeekday) EventName() string       { return "toggle_weekday" }
func (ToggleTime) EventName() string          { return "toggle_time" }
func (SetMonthAnchor) EventName() string      { return "set_month_anchor" }
func (SetEndDate) EventName() string          { return "set_end_date" }
func (SetInterval) EventName() string         { return "set_interval" }
