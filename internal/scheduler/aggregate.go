package scheduler

import (
	"sort"
	"time"

	"smart-scheduler/internal/model"
)

// BuildSchedule groups activities by target day, schedules each day and
// returns the concatenation globally sorted by start time. Days never overlap
// on the date axis, so no cross-day conflict checking happens here; residual
// intra-day overlaps are the resolver's job.
func (e *Engine) BuildSchedule(activities []model.Activity, base time.Time) (model.Schedule, []string) {
	byDay := make(map[int][]model.Activity)
	for _, a := range activities {
		byDay[a.TargetDay] = append(byDay[a.TargetDay], a)
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	var schedule model.Schedule
	var warnings []string
	for _, day := range days {
		res := e.ScheduleDay(byDay[day], day, base)
		schedule = append(schedule, res.Events...)
		warnings = append(warnings, res.Warnings...)
	}

	schedule.Sort()
	return schedule, warnings
}
