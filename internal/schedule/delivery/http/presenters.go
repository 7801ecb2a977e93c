package http

import (
	"errors"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/schedule"
	"smart-scheduler/pkg/response"
)

// --- Request DTOs ---

type recurrenceReq struct {
	Type string   `json:"type" binding:"required,oneof=daily weekly"`
	Days []string `json:"days"`
}

type activityReq struct {
	Name       string         `json:"name"        binding:"required,min=1,max=255"`
	Hours      float64        `json:"hours"       binding:"required,gt=0"`
	Sessions   int            `json:"sessions"    binding:"omitempty,min=1"`
	Priority   string         `json:"priority"    binding:"omitempty,oneof=high medium low"`
	TargetDay  int            `json:"target_day"  binding:"omitempty,min=0"`
	FixedTimes []string       `json:"fixed_times"`
	Recurrence *recurrenceReq `json:"recurrence"`
}

type generateReq struct {
	Text       string        `json:"text"`
	Activities []activityReq `json:"activities" binding:"omitempty,dive"`
}

var errEmptyRequest = errors.New("either text or activities is required")

func (r generateReq) validate() error {
	if r.Text == "" && len(r.Activities) == 0 {
		return errEmptyRequest
	}
	return nil
}

func (r generateReq) toInput() schedule.GenerateInput {
	input := schedule.GenerateInput{Text: r.Text}
	for _, a := range r.Activities {
		in := schedule.ActivityInput{
			Name:       a.Name,
			Hours:      a.Hours,
			Sessions:   a.Sessions,
			Priority:   a.Priority,
			TargetDay:  a.TargetDay,
			FixedTimes: a.FixedTimes,
		}
		if a.Recurrence != nil {
			in.Recurrence = &schedule.RecurrenceInput{
				Type: a.Recurrence.Type,
				Days: a.Recurrence.Days,
			}
		}
		input.Activities = append(input.Activities, in)
	}
	return input
}

// --- Response DTOs ---

type eventResp struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Start            response.DateTime `json:"start"`
	End              response.DateTime `json:"end"`
	Session          int               `json:"session,omitempty"`
	TotalSessions    int               `json:"total_sessions,omitempty"`
	Kind             string            `json:"kind"`
	Priority         string            `json:"priority"`
	Day              int               `json:"day"`
	Hours            float64           `json:"hours"`
	ConflictResolved bool              `json:"conflict_resolved,omitempty"`
}

func newEventResp(ev model.ScheduledEvent) eventResp {
	return eventResp{
		ID:               ev.ID,
		Name:             ev.Name,
		Start:            response.DateTime(ev.Start),
		End:              response.DateTime(ev.End),
		Session:          ev.Session,
		TotalSessions:    ev.TotalSessions,
		Kind:             string(ev.Kind),
		Priority:         string(ev.Priority),
		Day:              ev.DayOffset,
		Hours:            ev.Hours,
		ConflictResolved: ev.ConflictResolved,
	}
}

type metricsResp struct {
	ProductiveHours    float64 `json:"productive_hours"`
	BreakHours         float64 `json:"break_hours"`
	TotalHours         float64 `json:"total_hours"`
	PriorityScore      float64 `json:"priority_score"`
	MaxPriorityScore   float64 `json:"max_priority_score"`
	EfficiencyScore    float64 `json:"efficiency_score"`
	PriorityEfficiency float64 `json:"priority_efficiency"`
}

func newMetricsResp(m model.Metrics) metricsResp {
	return metricsResp{
		ProductiveHours:    m.ProductiveHours,
		BreakHours:         m.BreakHours,
		TotalHours:         m.TotalHours,
		PriorityScore:      m.PriorityScore,
		MaxPriorityScore:   m.MaxPriorityScore,
		EfficiencyScore:    m.EfficiencyScore,
		PriorityEfficiency: m.PriorityEfficiency,
	}
}

type generateResp struct {
	ID                string      `json:"id"`
	Schedule          []eventResp `json:"schedule"`
	Metrics           metricsResp `json:"metrics"`
	ConflictsResolved int         `json:"conflicts_resolved"`
	ResolutionNotes   []string    `json:"resolution_notes,omitempty"`
	Suggestions       []string    `json:"suggestions,omitempty"`
	Warnings          []string    `json:"warnings,omitempty"`
}

func (h *handler) newGenerateResp(out schedule.GenerateOutput) generateResp {
	events := make([]eventResp, len(out.Schedule))
	for i, ev := range out.Schedule {
		events[i] = newEventResp(ev)
	}
	return generateResp{
		ID:                out.ID,
		Schedule:          events,
		Metrics:           newMetricsResp(out.Metrics),
		ConflictsResolved: out.ConflictsDetected,
		ResolutionNotes:   out.ResolutionNotes,
		Suggestions:       out.Suggestions,
		Warnings:          out.Warnings,
	}
}

type topActivityResp struct {
	Name        string  `json:"name"`
	Frequency   int     `json:"frequency"`
	AvgDuration float64 `json:"avg_duration"`
}

type dailyTrendResp struct {
	Date       response.Date `json:"date"`
	Efficiency float64       `json:"efficiency"`
}

type analyticsResp struct {
	TotalSchedules    int               `json:"total_schedules"`
	AverageEfficiency float64           `json:"average_efficiency"`
	AverageHours      float64           `json:"average_hours"`
	LastCreated       string            `json:"last_created,omitempty"`
	TopActivities     []topActivityResp `json:"top_activities"`
	DailyTrends       []dailyTrendResp  `json:"daily_trends"`
}

func (h *handler) newAnalyticsResp(out schedule.AnalyticsOutput) analyticsResp {
	resp := analyticsResp{
		TotalSchedules:    out.TotalSchedules,
		AverageEfficiency: out.AverageEfficiency,
		AverageHours:      out.AverageHours,
		LastCreated:       out.LastCreated,
		TopActivities:     []topActivityResp{},
		DailyTrends:       []dailyTrendResp{},
	}
	for _, ta := range out.TopActivities {
		resp.TopActivities = append(resp.TopActivities, topActivityResp{
			Name:        ta.Name,
			Frequency:   ta.Frequency,
			AvgDuration: ta.AvgDuration,
		})
	}
	for _, dt := range out.DailyTrends {
		resp.DailyTrends = append(resp.DailyTrends, dailyTrendResp{
			Date:       response.Date(dt.Date),
			Efficiency: dt.Efficiency,
		})
	}
	return resp
}
