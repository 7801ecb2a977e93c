package repository

import (
	"time"

	"smart-scheduler/internal/model"
)

// RecordOptions holds the parameters for recording one generated schedule.
type RecordOptions struct {
	InputText       string // raw request text; empty for structured requests
	Schedule        model.Schedule
	EfficiencyScore float64
	TotalHours      float64
}

// TopActivity is one row of the activity-frequency aggregate.
type TopActivity struct {
	Name        string
	Frequency   int
	AvgDuration float64
}

// DailyTrend is the average efficiency of one calendar day.
type DailyTrend struct {
	Date       time.Time // midnight local, day precision
	Efficiency float64
}

// Analytics is the aggregate view over recorded schedule history.
type Analytics struct {
	TotalSchedules    int
	AverageEfficiency float64
	AverageHours      float64
	LastCreated       string
	TopActivities     []TopActivity
	DailyTrends       []DailyTrend
}
