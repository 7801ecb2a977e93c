package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/schedule/repository"
)

// eventRecord is the persisted JSON shape of one scheduled event.
type eventRecord struct {
	Name     string  `json:"name"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Day      int     `json:"day"`
	Priority string  `json:"priority"`
	Hours    float64 `json:"hours"`
	Kind     string  `json:"kind"`
}

// Record stores one generated schedule plus its non-break activities.
func (r *Repository) Record(ctx context.Context, opt repository.RecordOptions) error {
	records := make([]eventRecord, 0, len(opt.Schedule))
	for _, ev := range opt.Schedule {
		records = append(records, eventRecord{
			Name:     ev.Name,
			Start:    ev.Start.Format(time.RFC3339),
			End:      ev.End.Format(time.RFC3339),
			Day:      ev.DayOffset,
			Priority: string(ev.Priority),
			Hours:    ev.Hours,
			Kind:     string(ev.Kind),
		})
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO schedules (input_text, schedule_data, productivity_score, total_hours)
		VALUES (?, ?, ?, ?)`,
		opt.InputText, string(blob), opt.EfficiencyScore, opt.TotalHours)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}

	scheduleID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("schedule id: %w", err)
	}

	for _, ev := range opt.Schedule {
		if ev.Kind == model.KindBreak {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO activities (schedule_id, activity_name, duration, priority)
			VALUES (?, ?, ?, ?)`,
			scheduleID, ev.Name, ev.Hours, string(ev.Priority)); err != nil {
			return fmt.Errorf("insert activity %q: %w", ev.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.l.Debugf(ctx, "history: recorded schedule id=%d events=%d", scheduleID, len(opt.Schedule))
	return nil
}
