package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"smart-scheduler/internal/model"
)

// DayResult is the output of scheduling a single day.
type DayResult struct {
	Events   []model.ScheduledEvent
	Warnings []string
}

// ScheduleDay places the given same-day activities into a chronological,
// break-interleaved list of events for base's date + dayOffset.
//
// Fixed activities claim their wall-clock slots first; flexible activities
// are then placed by descending priority weight with a forward-moving cursor
// starting at the configured day start. The cursor never runs past midnight:
// an activity that no longer fits produces a "day full" warning instead.
func (e *Engine) ScheduleDay(activities []model.Activity, dayOffset int, base time.Time) DayResult {
	var res DayResult

	date := e.startOfDay(base).AddDate(0, 0, dayOffset)
	dayEnd := date.AddDate(0, 0, 1)

	var fixed, flexible []model.Activity
	for _, a := range activities {
		if len(a.FixedTimes) > 0 {
			fixed = append(fixed, a)
		} else {
			flexible = append(flexible, a)
		}
	}

	fixedEvents, fixedWarnings := e.placeFixed(fixed, date, dayOffset)
	res.Warnings = append(res.Warnings, fixedWarnings...)

	// Highest priority first; ties keep input order.
	sort.SliceStable(flexible, func(i, j int) bool {
		return flexible[i].Priority.Weight() > flexible[j].Priority.Weight()
	})

	events := append([]model.ScheduledEvent(nil), fixedEvents...)
	cursor := date.Add(e.cfg.DayStart)

	for _, a := range flexible {
		dur := a.Duration()

		// Skip over fixed events. Already-placed flexible events are not
		// re-checked: the cursor only moves forward past them.
		for overlapsAny(cursor, dur, fixedEvents) && cursor.Before(dayEnd) {
			cursor = cursor.Add(dur + e.cfg.SearchPadding)
		}

		for session := 1; session <= a.Sessions; session++ {
			end := cursor.Add(dur)
			if end.After(dayEnd) {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"day +%d full: could not place %q session %d/%d", dayOffset, a.Name, session, a.Sessions))
				break
			}

			events = append(events, model.ScheduledEvent{
				ID:            uuid.NewString(),
				Name:          a.Name,
				Start:         cursor,
				End:           end,
				Session:       session,
				TotalSessions: a.Sessions,
				Kind:          model.KindFlexible,
				Priority:      a.Priority,
				DayOffset:     dayOffset,
				Hours:         a.Hours,
			})
			cursor = end

			if session < a.Sessions {
				breakEnd := cursor.Add(e.cfg.BreakLength)
				if breakEnd.Add(dur).After(dayEnd) {
					res.Warnings = append(res.Warnings, fmt.Sprintf(
						"day +%d full: could not place %q session %d/%d", dayOffset, a.Name, session+1, a.Sessions))
					break
				}
				events = append(events, model.ScheduledEvent{
					ID:        uuid.NewString(),
					Name:      model.BreakName,
					Start:     cursor,
					End:       breakEnd,
					Kind:      model.KindBreak,
					Priority:  model.PriorityLow,
					DayOffset: dayOffset,
					Hours:     e.cfg.BreakLength.Hours(),
				})
				cursor = breakEnd
			}
		}
	}

	schedule := model.Schedule(events)
	schedule.Sort()
	res.Events = schedule
	return res
}

// placeFixed places every fixed-time entry into a slot keyed by the start
// minute. Two activities claiming the identical minute resolve
// last-write-wins, with a warning naming both sides.
func (e *Engine) placeFixed(fixed []model.Activity, date time.Time, dayOffset int) ([]model.ScheduledEvent, []string) {
	slots := make(map[string]model.ScheduledEvent)
	var warnings []string

	for _, a := range fixed {
		for _, ts := range a.FixedTimes {
			wallClock, err := time.ParseInLocation(model.WallClockLayout, ts, e.cfg.Location)
			if err != nil {
				// Validation upstream rejects these.
				continue
			}
			start := date.Add(time.Duration(wallClock.Hour())*time.Hour + time.Duration(wallClock.Minute())*time.Minute)

			key := start.Format(model.WallClockLayout)
			if prev, ok := slots[key]; ok && prev.Name != a.Name {
				warnings = append(warnings, fmt.Sprintf(
					"fixed slot %s: %q replaces %q", key, a.Name, prev.Name))
			}
			slots[key] = model.ScheduledEvent{
				ID:            uuid.NewString(),
				Name:          a.Name,
				Start:         start,
				End:           start.Add(a.Duration()),
				Session:       1,
				TotalSessions: 1,
				Kind:          model.KindFixed,
				Priority:      a.Priority,
				DayOffset:     dayOffset,
				Hours:         a.Hours,
			}
		}
	}

	keys := make([]string, 0, len(slots))
	for k := range slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	events := make([]model.ScheduledEvent, 0, len(slots))
	for _, k := range keys {
		events = append(events, slots[k])
	}
	return events, warnings
}

// overlapsAny reports whether [start, start+dur) intersects any of the events.
func overlapsAny(start time.Time, dur time.Duration, events []model.ScheduledEvent) bool {
	end := start.Add(dur)
	for _, ev := range events {
		if start.Before(ev.End) && end.After(ev.Start) {
			return true
		}
	}
	return false
}
