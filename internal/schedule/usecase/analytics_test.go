package usecase_test

import (
	"context"
	"testing"
	"time"

	"smart-scheduler/internal/schedule/repository"
)

func TestAnalytics(t *testing.T) {
	trendDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	repo := &fakeHistoryRepo{
		analytics: repository.Analytics{
			TotalSchedules:    3,
			AverageEfficiency: 0.85,
			AverageHours:      5.5,
			LastCreated:       "2025-03-10 09:00:00",
			TopActivities: []repository.TopActivity{
				{Name: "belajar", Frequency: 3, AvgDuration: 2},
			},
			DailyTrends: []repository.DailyTrend{
				{Date: trendDate, Efficiency: 0.85},
			},
		},
	}
	uc := newTestUseCase(repo)

	out, err := uc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}

	if out.TotalSchedules != 3 || out.AverageEfficiency != 0.85 || out.AverageHours != 5.5 {
		t.Errorf("overall stats = %+v", out)
	}
	if len(out.TopActivities) != 1 || out.TopActivities[0].Name != "belajar" {
		t.Errorf("TopActivities = %+v", out.TopActivities)
	}
	if len(out.DailyTrends) != 1 || !out.DailyTrends[0].Date.Equal(trendDate) {
		t.Errorf("DailyTrends = %+v", out.DailyTrends)
	}
}

func TestAnalyticsRepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeHistoryRepo{fail: true})

	if _, err := uc.Analytics(context.Background()); err == nil {
		t.Fatalf("expected error when history is down")
	}
}
