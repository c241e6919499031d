package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/careminder/internal/contract"
	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/alexanderramin/careminder/internal/service"
	"github.com/samber/mo"
)

// resolveSuggestion picks the suggestion from --action or --suggest. Both
// empty means no suggestion.
func resolveSuggestion(ctx context.Context, app *App, action, suggest string) (mo.Option[domain.Suggestion], error) {
	switch {
	case action != "" && suggest != "":
		return mo.None[domain.Suggestion](), fmt.Errorf("--action and --suggest cannot be combined")
	case action != "":
		return app.Catalog.Suggestion(ctx, action)
	case suggest != "":
		s, err := contract.ParseSuggestion([]byte(suggest))
		if err != nil {
			return mo.None[domain.Suggestion](), err
		}
		return mo.Some(s), nil
	default:
		return mo.None[domain.Suggestion](), nil
	}
}

// applyEvents feeds events to the draft in order and stops at the first
// rejected one.
func applyEvents(ctx context.Context, editor service.RecurrenceEditor, id string, events []recurrence.Event) (*service.Draft, error) {
	draft, err := editor.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		draft, err = editor.Apply(ctx, id, ev)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ev.EventName(), err)
		}
	}
	return draft, nil
}

// slotAt finds the slot of ref whose wall clock is hour:minute. The earliest
// match wins, so 00:00 on a midnight reference is the start itself.
func slotAt(slots []time.Time, hour, minute int) (time.Time, bool) {
	for _, s := range slots {
		if s.Hour() == hour && s.Minute() == minute {
			return s, true
		}
	}
	return time.Time{}, false
}

// weekdayToggles returns the toggles that turn current into want. Additions
// come first so the set never passes through empty.
func weekdayToggles(current, want []time.Weekday) []recurrence.Event {
	var add, remove []recurrence.Event
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		in, wanted := containsWeekday(current, wd), containsWeekday(want, wd)
		switch {
		case wanted && !in:
			add = append(add, recurrence.ToggleWeekday{Weekday: wd})
		case in && !wanted:
			remove = append(remove, recurrence.ToggleWeekday{Weekday: wd})
		}
	}
	return append(add, remove...)
}

func containsWeekday(days []time.Weekday, wd time.Weekday) bool {
	for _, d := range days {
		if d == wd {
			return true
		}
	}
	return false
}
