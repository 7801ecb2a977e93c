package model

import (
	"fmt"
	"time"
)

// Priority represents how important an activity is to the user.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the numeric weight used for ordering and score weighting.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 1
	}
}

// ParsePriority normalizes a priority string, defaulting to medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// RecurrenceType is the kind of recurrence pattern.
type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// RecurrencePattern describes how an activity repeats across days.
// Days holds lowercase English weekday names ("monday", ...) and is only
// meaningful for weekly patterns.
type RecurrencePattern struct {
	Type RecurrenceType
	Days []string
}

// WallClockLayout is the layout for fixed wall-clock times ("HH:MM").
const WallClockLayout = "15:04"

// Activity is a requested, not-yet-placed unit of intended work.
// It is produced by the text parser (or by recurrence expansion) and is a
// read-only input to scheduling.
type Activity struct {
	Name       string
	Hours      float64 // duration per session
	Sessions   int
	Priority   Priority
	TargetDay  int      // day offset from today, >= 0
	FixedTimes []string // wall-clock start times ("HH:MM"); empty when flexible
	Flexible   bool
	Recurrence *RecurrencePattern

	// Origin is the name of the source activity when this record was
	// materialized by recurrence expansion.
	Origin string
}

// Validate rejects malformed activities at construction time, before any
// scheduling happens.
func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity has no name")
	}
	if a.Hours <= 0 {
		return fmt.Errorf("activity %q: duration must be positive, got %v", a.Name, a.Hours)
	}
	if a.Sessions < 1 {
		return fmt.Errorf("activity %q: sessions must be >= 1, got %d", a.Name, a.Sessions)
	}
	if a.TargetDay < 0 {
		return fmt.Errorf("activity %q: target day must be >= 0, got %d", a.Name, a.TargetDay)
	}
	if len(a.FixedTimes) > 0 && a.Flexible {
		return fmt.Errorf("activity %q: cannot be flexible and have fixed times", a.Name)
	}
	for _, ts := range a.FixedTimes {
		if _, err := time.Parse(WallClockLayout, ts); err != nil {
			return fmt.Errorf("activity %q: invalid fixed time %q", a.Name, ts)
		}
	}
	if a.Recurrence != nil {
		switch a.Recurrence.Type {
		case RecurrenceDaily, RecurrenceWeekly:
		default:
			return fmt.Errorf("activity %q: unknown recurrence type %q", a.Name, a.Recurrence.Type)
		}
		for _, day := range a.Recurrence.Days {
			if !validWeekdays[day] {
				return fmt.Errorf("activity %q: unknown weekday %q", a.Name, day)
			}
		}
	}
	return nil
}

var validWeekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Duration converts the per-session hours into a time.Duration.
func (a Activity) Duration() time.Duration {
	return time.Duration(a.Hours * float64(time.Hour))
}
