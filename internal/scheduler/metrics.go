package scheduler

import "smart-scheduler/internal/model"

// CalculateMetrics derives productivity statistics from a finalized schedule.
// Durations are recomputed from End-Start rather than trusting the stored
// Hours field, which is only used for priority weighting. An empty schedule
// yields all-zero metrics.
func CalculateMetrics(schedule model.Schedule) model.Metrics {
	var m model.Metrics

	for _, ev := range schedule {
		duration := ev.End.Sub(ev.Start).Hours()

		if ev.Kind == model.KindBreak {
			m.BreakHours += duration
			continue
		}

		m.ProductiveHours += duration
		hours := ev.Hours
		if hours <= 0 {
			hours = duration
		}
		m.PriorityScore += hours * float64(ev.Priority.Weight())
	}

	m.TotalHours = m.ProductiveHours + m.BreakHours

	// Upper bound, reached only when every event is high priority.
	m.MaxPriorityScore = m.ProductiveHours * float64(model.PriorityHigh.Weight())

	if m.TotalHours > 0 {
		m.EfficiencyScore = m.ProductiveHours / m.TotalHours
	}
	if m.MaxPriorityScore > 0 {
		m.PriorityEfficiency = m.PriorityScore / m.MaxPriorityScore
	}
	return m
}
