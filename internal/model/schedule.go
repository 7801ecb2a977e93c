package model

import (
	"sort"
	"time"
)

// EventKind classifies a placed event.
type EventKind string

const (
	KindFixed    EventKind = "fixed"
	KindFlexible EventKind = "flexible"
	KindBreak    EventKind = "break"
)

// BreakName is the literal event name the presentation layer special-cases.
const BreakName = "BREAK"

// ScheduledEvent is a concretely time-placed instance of an Activity
// (or an inserted break).
type ScheduledEvent struct {
	ID            string
	Name          string
	Start         time.Time // minute precision
	End           time.Time // always after Start
	Session       int       // 1-based session index; 0 for breaks
	TotalSessions int       // 0 for breaks
	Kind          EventKind
	Priority      Priority
	DayOffset     int

	// Hours is the per-session duration of the source activity. Redundant
	// with End-Start, kept so priority weighting is independent of rounding.
	Hours float64

	ConflictResolved bool
}

// Overlaps reports whether two events intersect on the half-open
// interval [Start, End).
func (e ScheduledEvent) Overlaps(other ScheduledEvent) bool {
	return !(!e.End.After(other.Start) || !e.Start.Before(other.End))
}

// Schedule is an ordered sequence of events, kept sorted ascending by start
// after every mutation.
type Schedule []ScheduledEvent

// Sort restores the ascending-by-start invariant.
func (s Schedule) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Start.Before(s[j].Start)
	})
}

// Conflict is an unordered pair of events whose intervals intersect.
// It is computed transiently and never persisted with the schedule.
type Conflict struct {
	First  ScheduledEvent
	Second ScheduledEvent
}

// Metrics is the productivity record derived from a finalized schedule.
type Metrics struct {
	ProductiveHours    float64
	BreakHours         float64
	TotalHours         float64
	PriorityScore      float64
	MaxPriorityScore   float64
	EfficiencyScore    float64 // productive / (productive + break), 0 when empty
	PriorityEfficiency float64 // priority score / max, 0 when max is 0
}
