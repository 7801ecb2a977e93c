package usecase

import (
	"fmt"
	"strings"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/schedule"
)

// resolveActivities turns the request into validated activities, either by
// converting the structured list or by parsing the free text.
func (uc *implUseCase) resolveActivities(input schedule.GenerateInput) ([]model.Activity, error) {
	if len(input.Activities) > 0 {
		return convertStructured(input.Activities)
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, schedule.ErrEmptyInput
	}

	res := uc.parser.Parse(text)
	if len(res.Activities) == 0 {
		return nil, schedule.ErrNoActivities
	}

	activities := make([]model.Activity, 0, len(res.Activities))
	for _, a := range res.Activities {
		m := model.Activity{
			Name:       a.Name,
			Hours:      a.Hours,
			Sessions:   a.Sessions,
			Priority:   model.ParsePriority(a.Priority),
			TargetDay:  a.TargetDay,
			FixedTimes: a.FixedTimes,
			Flexible:   a.Flexible,
		}
		if res.Recurrence != nil {
			m.Recurrence = &model.RecurrencePattern{
				Type: model.RecurrenceType(res.Recurrence.Type),
				Days: res.Recurrence.Days,
			}
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", schedule.ErrInvalidActivity, err)
		}
		activities = append(activities, m)
	}
	return activities, nil
}

func convertStructured(inputs []schedule.ActivityInput) ([]model.Activity, error) {
	activities := make([]model.Activity, 0, len(inputs))
	for _, in := range inputs {
		m := model.Activity{
			Name:       strings.TrimSpace(in.Name),
			Hours:      in.Hours,
			Sessions:   in.Sessions,
			Priority:   model.ParsePriority(in.Priority),
			TargetDay:  in.TargetDay,
			FixedTimes: in.FixedTimes,
			Flexible:   len(in.FixedTimes) == 0,
		}
		if m.Sessions == 0 {
			m.Sessions = 1
		}
		if in.Recurrence != nil {
			m.Recurrence = &model.RecurrencePattern{
				Type: model.RecurrenceType(strings.ToLower(in.Recurrence.Type)),
				Days: lowercaseAll(in.Recurrence.Days),
			}
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", schedule.ErrInvalidActivity, err)
		}
		activities = append(activities, m)
	}
	return activities, nil
}

func lowercaseAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
