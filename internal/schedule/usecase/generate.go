package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/schedule"
	"smart-scheduler/internal/schedule/repository"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/gcalendar"
)

// Generate parses the request into activities, places them day by day,
// resolves conflicts and derives productivity metrics.
func (uc *implUseCase) Generate(ctx context.Context, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	activities, err := uc.resolveActivities(input)
	if err != nil {
		return schedule.GenerateOutput{}, err
	}

	uc.l.Infof(ctx, "Generate: activities=%d text_length=%d", len(activities), len(input.Text))

	base := uc.now()

	expanded, err := uc.engine.ExpandRecurring(activities, base)
	if err != nil {
		return schedule.GenerateOutput{}, fmt.Errorf("expand recurrence: %w", err)
	}

	built, warnings := uc.engine.BuildSchedule(expanded, base)

	conflicts := scheduler.DetectConflicts(built)
	resolved := built
	var notes []string
	if len(conflicts) > 0 {
		uc.l.Infof(ctx, "Generate: detected %d conflicts", len(conflicts))
		resolved, notes = uc.engine.ResolveConflicts(built, conflicts)
	}

	out := schedule.GenerateOutput{
		ID:                uuid.NewString(),
		Schedule:          resolved,
		Metrics:           scheduler.CalculateMetrics(resolved),
		ConflictsDetected: len(conflicts),
		ResolutionNotes:   notes,
		Suggestions:       scheduler.Suggestions(resolved),
		Warnings:          warnings,
	}

	uc.recordHistory(ctx, input.Text, out)
	uc.exportToCalendar(ctx, resolved)

	return out, nil
}

// recordHistory persists the schedule for analytics. Failures are logged
// and do not fail the request.
func (uc *implUseCase) recordHistory(ctx context.Context, inputText string, out schedule.GenerateOutput) {
	if uc.repo == nil {
		return
	}
	err := uc.repo.Record(ctx, repository.RecordOptions{
		InputText:       inputText,
		Schedule:        out.Schedule,
		EfficiencyScore: out.Metrics.EfficiencyScore,
		TotalHours:      out.Metrics.TotalHours,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Generate: history record failed (non-fatal): %v", err)
	}
}

// exportToCalendar mirrors the non-break events into Google Calendar.
// Failures are logged per event and do not fail the request.
func (uc *implUseCase) exportToCalendar(ctx context.Context, sched model.Schedule) {
	if uc.calendar == nil {
		return
	}
	for _, ev := range sched {
		if ev.Kind == model.KindBreak {
			continue
		}
		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     ev.Name,
			Description: fmt.Sprintf("session %d/%d, priority %s", ev.Session, ev.TotalSessions, ev.Priority),
			StartTime:   ev.Start,
			EndTime:     ev.End,
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "Generate: calendar export failed for %q (non-fatal): %v", ev.Name, err)
		}
	}
}
