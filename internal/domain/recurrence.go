package domain

import (
	"slices"
	"time"
)

// Anchors is the unit-specific part of a Recurrence. The concrete type fixes
// the unit, so a weekday set can never sit next to a monthly rule.
type Anchors interface {
	Unit() Unit
	clone() Anchors
}

// DayAnchors holds the selected times of day, sorted ascending. The first
// element is the reference start time.
type DayAnchors struct {
	Times []time.Time
}

func (DayAnchors) Unit() Unit { return UnitDay }

func (a DayAnchors) clone() Anchors { return DayAnchors{Times: slices.Clone(a.Times)} }

// Contains matches by instant.
func (a DayAnchors) Contains(t time.Time) bool {
	return slices.ContainsFunc(a.Times, t.Equal)
}

// WeekAnchors holds the selected weekdays, sorted ascending.
type WeekAnchors struct {
	Days []time.Weekday
}

func (WeekAnchors) Unit() Unit { return UnitWeek }

func (a WeekAnchors) clone() Anchors { return WeekAnchors{Days: slices.Clone(a.Days)} }

func (a WeekAnchors) Contains(wd time.Weekday) bool {
	return slices.Contains(a.Days, wd)
}

type MonthAnchors struct {
	Option MonthlyAnchor
}

func (MonthAnchors) Unit() Unit { return UnitMonth }

func (a MonthAnchors) clone() Anchors { return a }

type YearAnchors struct{}

func (YearAnchors) Unit() Unit { return UnitYear }

func (a YearAnchors) clone() Anchors { return a }

// Recurrence is an active recurrence configuration. Values are replaced
// wholesale on every change; use Clone before handing one to code that may
// keep it.
type Recurrence struct {
	Interval int
	EndDate  time.Time
	Anchors  Anchors
}

// Unit derives the unit from the anchor variant.
func (r Recurrence) Unit() Unit {
	if r.Anchors == nil {
		return ""
	}
	return r.Anchors.Unit()
}

// Clone returns a deep copy that shares no slices with r.
func (r Recurrence) Clone() Recurrence {
	out := r
	if r.Anchors != nil {
		out.Anchors = r.Anchors.clone()
	}
	return out
}

// Suggestion is an upstream "suggested frequency" for an action.
type Suggestion struct {
	Unit     Unit
	Interval int
}

// Action is a catalogued habit with an optional suggested frequency.
type Action struct {
	Name      string
	Category  string
	Suggested *Suggestion

	EstimatedStartingCost *float64
	EstimatedEndingCost   *float64
}
