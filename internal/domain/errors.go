package domain

import "errors"

var (
	// ErrInvalidTransition indicates an event that does not apply to the
	// current unit or breaks one of its preconditions.
	ErrInvalidTransition = errors.New("invalid recurrence transition")

	// ErrDegenerateDateRange indicates an end date that falls before the
	// reference date.
	ErrDegenerateDateRange = errors.New("end date is before reference date")

	// ErrNoRecurrence indicates an edit event arrived while recurrence is disabled.
	ErrNoRecurrence = errors.New("recurrence is not enabled")

	ErrDraftNotFound = errors.New("draft not found")

	ErrUnknownAction = errors.New("unknown action")
)
