package schedule

import (
	"time"

	"smart-scheduler/internal/model"
)

// RecurrenceInput describes how a structured activity repeats.
type RecurrenceInput struct {
	Type string   // "daily" or "weekly"
	Days []string // lowercase English weekday names, weekly only
}

// ActivityInput is one structured activity in a generate request, used
// when the caller bypasses text parsing. Activities without FixedTimes
// are scheduled flexibly.
type ActivityInput struct {
	Name       string
	Hours      float64
	Sessions   int
	Priority   string
	TargetDay  int
	FixedTimes []string // wall-clock start times ("HH:MM")
	Recurrence *RecurrenceInput
}

// GenerateInput is the input for schedule generation. Exactly one of Text
// or Activities should be set; Activities wins when both are present.
type GenerateInput struct {
	Text       string
	Activities []ActivityInput
}

// GenerateOutput is the result of schedule generation.
type GenerateOutput struct {
	ID                string // unique id for this generated schedule
	Schedule          model.Schedule
	Metrics           model.Metrics
	ConflictsDetected int
	ResolutionNotes   []string
	Suggestions       []string
	Warnings          []string
}

// TopActivity is one frequently scheduled activity in the analytics view.
type TopActivity struct {
	Name        string
	Frequency   int
	AvgDuration float64
}

// DailyTrend is one day of historical efficiency.
type DailyTrend struct {
	Date       time.Time // day precision
	Efficiency float64
}

// AnalyticsOutput is the aggregated productivity history.
type AnalyticsOutput struct {
	TotalSchedules    int
	AverageEfficiency float64
	AverageHours      float64
	LastCreated       string
	TopActivities     []TopActivity
	DailyTrends       []DailyTrend
}
