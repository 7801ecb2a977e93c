package scheduler

import (
	"fmt"
	"sort"
	"time"

	"smart-scheduler/internal/model"
)

// DetectConflicts returns every pair of events whose [start, end) intervals
// intersect. Quadratic in event count, which is fine for the single-digit to
// low-tens schedules this system produces. Pure and side-effect free.
func DetectConflicts(schedule model.Schedule) []model.Conflict {
	var conflicts []model.Conflict
	for i := 0; i < len(schedule); i++ {
		for j := i + 1; j < len(schedule); j++ {
			if schedule[i].Overlaps(schedule[j]) {
				conflicts = append(conflicts, model.Conflict{
					First:  schedule[i],
					Second: schedule[j],
				})
			}
		}
	}
	return conflicts
}

type gap struct {
	start time.Time
	end   time.Time
}

func (g gap) length() time.Duration { return g.end.Sub(g.start) }

// ResolveConflicts makes a single pass over the given conflict list,
// relocating the first event of each pair into the earliest-in-day free gap
// that fits it. When no gap qualifies both events keep their times and a
// warning note is recorded. Resolution is first-found, not optimal, and the
// pass never re-derives conflicts, so it cannot oscillate.
//
// The returned schedule is re-sorted after every relocation; the notes are
// human-readable and ordered like the input conflicts.
func (e *Engine) ResolveConflicts(schedule model.Schedule, conflicts []model.Conflict) (model.Schedule, []string) {
	resolved := append(model.Schedule(nil), schedule...)
	var notes []string

	for _, c := range conflicts {
		mover := c.First
		idx := indexByID(resolved, mover.ID)
		if idx >= 0 {
			// The event may have been relocated by an earlier conflict;
			// always move its current incarnation.
			mover = resolved[idx]
		}
		dur := mover.End.Sub(mover.Start)

		gaps := freeGaps(resolved, dur)
		if idx < 0 || len(gaps) == 0 {
			notes = append(notes, fmt.Sprintf(
				"conflict: %q overlaps %q and no free gap fits, kept original times", c.First.Name, c.Second.Name))
			continue
		}

		target := gaps[0]
		moved := mover
		moved.Start = target.start
		moved.End = target.start.Add(dur)
		moved.ConflictResolved = true

		resolved = append(resolved[:idx], resolved[idx+1:]...)
		resolved = append(resolved, moved)
		resolved.Sort()

		notes = append(notes, fmt.Sprintf(
			"moved %q to %s because of conflict with %q",
			moved.Name, moved.Start.Format(model.WallClockLayout), c.Second.Name))
	}

	return resolved, notes
}

// freeGaps returns the free intervals between adjacent events of the
// start-sorted schedule that are long enough for dur, ordered by the
// hour-of-day of the gap start (a stand-in preference for earlier-in-day
// placement).
func freeGaps(schedule model.Schedule, dur time.Duration) []gap {
	var gaps []gap
	for i := 0; i+1 < len(schedule); i++ {
		g := gap{start: schedule[i].End, end: schedule[i+1].Start}
		if g.length() >= dur {
			gaps = append(gaps, g)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].start.Hour() < gaps[j].start.Hour()
	})
	return gaps
}

func indexByID(schedule model.Schedule, id string) int {
	for i, ev := range schedule {
		if ev.ID == id {
			return i
		}
	}
	return -1
}
