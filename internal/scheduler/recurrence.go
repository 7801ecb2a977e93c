package scheduler

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"smart-scheduler/internal/model"
)

var rruleWeekdays = map[string]rrule.Weekday{
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
	"sunday":    rrule.SU,
}

// ExpandRecurring materializes recurring activities into one day-stamped copy
// per matching day inside the lookahead window. Non-recurring activities pass
// through untouched. Each copy carries a back-reference to the originating
// activity in Origin and no longer carries the recurrence itself.
func (e *Engine) ExpandRecurring(activities []model.Activity, base time.Time) ([]model.Activity, error) {
	windowStart := e.startOfDay(base)

	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Recurrence == nil {
			out = append(out, a)
			continue
		}

		offsets, err := e.recurrenceOffsets(*a.Recurrence, windowStart)
		if err != nil {
			return nil, fmt.Errorf("expand recurrence for %q: %w", a.Name, err)
		}

		for _, offset := range offsets {
			instance := a
			instance.TargetDay = offset
			instance.Origin = a.Name
			instance.Recurrence = nil
			out = append(out, instance)
		}
	}
	return out, nil
}

// recurrenceOffsets returns the day offsets inside the lookahead window on
// which the pattern fires, relative to windowStart.
func (e *Engine) recurrenceOffsets(pattern model.RecurrencePattern, windowStart time.Time) ([]int, error) {
	opt := rrule.ROption{Dtstart: windowStart}

	switch pattern.Type {
	case model.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case model.RecurrenceWeekly:
		opt.Freq = rrule.WEEKLY
		for _, day := range pattern.Days {
			wd, ok := rruleWeekdays[day]
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q", day)
			}
			opt.Byweekday = append(opt.Byweekday, wd)
		}
		if len(opt.Byweekday) == 0 {
			// A bare "weekly" pattern defaults to Monday.
			opt.Byweekday = []rrule.Weekday{rrule.MO}
		}
	default:
		return nil, fmt.Errorf("unknown recurrence type %q", pattern.Type)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	windowEnd := windowStart.AddDate(0, 0, e.cfg.LookaheadDays).Add(-time.Second)
	occurrences := rule.Between(windowStart, windowEnd, true)

	offsets := make([]int, 0, len(occurrences))
	for _, occ := range occurrences {
		offsets = append(offsets, int(e.startOfDay(occ).Sub(windowStart).Hours()/24))
	}
	return offsets, nil
}
