package usecase

import (
	"context"
	"fmt"

	"smart-scheduler/internal/schedule"
)

// Analytics returns the aggregated productivity history.
func (uc *implUseCase) Analytics(ctx context.Context) (schedule.AnalyticsOutput, error) {
	a, err := uc.repo.QueryAnalytics(ctx)
	if err != nil {
		return schedule.AnalyticsOutput{}, fmt.Errorf("query analytics: %w", err)
	}

	out := schedule.AnalyticsOutput{
		TotalSchedules:    a.TotalSchedules,
		AverageEfficiency: a.AverageEfficiency,
		AverageHours:      a.AverageHours,
		LastCreated:       a.LastCreated,
	}
	for _, ta := range a.TopActivities {
		out.TopActivities = append(out.TopActivities, schedule.TopActivity{
			Name:        ta.Name,
			Frequency:   ta.Frequency,
			AvgDuration: ta.AvgDuration,
		})
	}
	for _, dt := range a.DailyTrends {
		out.DailyTrends = append(out.DailyTrends, schedule.DailyTrend{
			Date:       dt.Date,
			Efficiency: dt.Efficiency,
		})
	}
	return out, nil
}
