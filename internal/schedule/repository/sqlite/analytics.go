package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart-scheduler/internal/schedule/repository"
)

// QueryAnalytics aggregates the recorded history: overall stats, the ten
// most frequent activities, and the last seven days of efficiency.
func (r *Repository) QueryAnalytics(ctx context.Context) (repository.Analytics, error) {
	var out repository.Analytics

	var (
		avgEfficiency sql.NullFloat64
		avgHours      sql.NullFloat64
		lastCreated   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(productivity_score), AVG(total_hours), MAX(created_at)
		FROM schedules`).
		Scan(&out.TotalSchedules, &avgEfficiency, &avgHours, &lastCreated)
	if err != nil {
		return repository.Analytics{}, fmt.Errorf("overall stats: %w", err)
	}
	out.AverageEfficiency = avgEfficiency.Float64
	out.AverageHours = avgHours.Float64
	out.LastCreated = lastCreated.String

	rows, err := r.db.QueryContext(ctx, `
		SELECT activity_name, COUNT(*) AS frequency, AVG(duration)
		FROM activities
		GROUP BY activity_name
		ORDER BY frequency DESC
		LIMIT 10`)
	if err != nil {
		return repository.Analytics{}, fmt.Errorf("top activities: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ta repository.TopActivity
		var avgDur sql.NullFloat64
		if err := rows.Scan(&ta.Name, &ta.Frequency, &avgDur); err != nil {
			return repository.Analytics{}, fmt.Errorf("scan top activity: %w", err)
		}
		ta.AvgDuration = avgDur.Float64
		out.TopActivities = append(out.TopActivities, ta)
	}
	if err := rows.Err(); err != nil {
		return repository.Analytics{}, fmt.Errorf("top activities: %w", err)
	}

	trendRows, err := r.db.QueryContext(ctx, `
		SELECT DATE(created_at) AS date, AVG(productivity_score)
		FROM schedules
		GROUP BY DATE(created_at)
		ORDER BY date DESC
		LIMIT 7`)
	if err != nil {
		return repository.Analytics{}, fmt.Errorf("daily trends: %w", err)
	}
	defer trendRows.Close()
	for trendRows.Next() {
		var dt repository.DailyTrend
		var day string
		if err := trendRows.Scan(&day, &dt.Efficiency); err != nil {
			return repository.Analytics{}, fmt.Errorf("scan daily trend: %w", err)
		}
		dt.Date, err = time.ParseInLocation(time.DateOnly, day, time.Local)
		if err != nil {
			return repository.Analytics{}, fmt.Errorf("parse trend date %q: %w", day, err)
		}
		out.DailyTrends = append(out.DailyTrends, dt)
	}
	if err := trendRows.Err(); err != nil {
		return repository.Analytics{}, fmt.Errorf("daily trends: %w", err)
	}

	return out, nil
}
