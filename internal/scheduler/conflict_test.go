package scheduler_test

import (
	"strings"
	"testing"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

func event(id, name string, start, end time.Time) model.ScheduledEvent {
	return model.ScheduledEvent{
		ID:            id,
		Name:          name,
		Start:         start,
		End:           end,
		Session:       1,
		TotalSessions: 1,
		Kind:          model.KindFlexible,
		Priority:      model.PriorityMedium,
		Hours:         end.Sub(start).Hours(),
	}
}

func TestDetectConflicts(t *testing.T) {
	tests := []struct {
		name     string
		schedule model.Schedule
		want     int
	}{
		{
			name: "overlapping pair",
			schedule: model.Schedule{
				event("a", "belajar", at(0, 9, 0), at(0, 10, 0)),
				event("b", "meeting", at(0, 9, 30), at(0, 10, 30)),
			},
			want: 1,
		},
		{
			name: "touching intervals are not conflicts",
			schedule: model.Schedule{
				event("a", "belajar", at(0, 9, 0), at(0, 10, 0)),
				event("b", "meeting", at(0, 10, 0), at(0, 11, 0)),
			},
			want: 0,
		},
		{
			name:     "empty schedule",
			schedule: nil,
			want:     0,
		},
		{
			name: "three-way overlap yields three pairs",
			schedule: model.Schedule{
				event("a", "x", at(0, 9, 0), at(0, 11, 0)),
				event("b", "y", at(0, 9, 30), at(0, 10, 30)),
				event("c", "z", at(0, 10, 0), at(0, 12, 0)),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scheduler.DetectConflicts(tt.schedule)
			if len(got) != tt.want {
				t.Errorf("DetectConflicts() = %d conflicts, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDetectConflicts_Idempotent(t *testing.T) {
	schedule := model.Schedule{
		event("a", "belajar", at(0, 9, 0), at(0, 10, 0)),
		event("b", "meeting", at(0, 9, 30), at(0, 10, 30)),
	}

	first := scheduler.DetectConflicts(schedule)
	second := scheduler.DetectConflicts(schedule)
	if len(first) != len(second) {
		t.Errorf("detection is not stable: %d then %d", len(first), len(second))
	}
}

func TestResolveConflicts_MovesIntoGap(t *testing.T) {
	schedule := model.Schedule{
		event("a", "belajar", at(0, 9, 0), at(0, 10, 0)),
		event("b", "meeting", at(0, 9, 30), at(0, 10, 30)),
		event("c", "kerja", at(0, 12, 0), at(0, 13, 0)),
	}
	conflicts := scheduler.DetectConflicts(schedule)
	if len(conflicts) != 1 {
		t.Fatalf("setup: want 1 conflict, got %d", len(conflicts))
	}

	resolved, notes := newTestEngine().ResolveConflicts(schedule, conflicts)

	if len(resolved) != 3 {
		t.Fatalf("resolution must not add or drop events, got %d", len(resolved))
	}
	if remaining := scheduler.DetectConflicts(resolved); len(remaining) != 0 {
		t.Errorf("conflict not resolved: %d remain", len(remaining))
	}

	var moved *model.ScheduledEvent
	for i := range resolved {
		if resolved[i].ConflictResolved {
			moved = &resolved[i]
		}
	}
	if moved == nil {
		t.Fatalf("no event marked conflict-resolved")
	}
	// Earliest qualifying gap is 10:30-12:00.
	if !moved.Start.Equal(at(0, 10, 30)) {
		t.Errorf("moved to %v, want 10:30", moved.Start)
	}

	if len(notes) != 1 || !strings.Contains(notes[0], "moved") {
		t.Errorf("expected one relocation note, got %v", notes)
	}

	for i := 0; i+1 < len(resolved); i++ {
		if resolved[i].Start.After(resolved[i+1].Start) {
			t.Errorf("resolved schedule not sorted")
		}
	}
}

func TestResolveConflicts_NoGapKeepsSchedule(t *testing.T) {
	schedule := model.Schedule{
		event("a", "belajar", at(0, 9, 0), at(0, 10, 0)),
		event("b", "meeting", at(0, 9, 30), at(0, 10, 30)),
	}
	conflicts := scheduler.DetectConflicts(schedule)

	resolved, notes := newTestEngine().ResolveConflicts(schedule, conflicts)

	if len(resolved) != 2 {
		t.Fatalf("schedule mutated, got %d events", len(resolved))
	}
	for i, ev := range resolved {
		if !ev.Start.Equal(schedule[i].Start) || ev.ConflictResolved {
			t.Errorf("event %q should keep its original placement", ev.Name)
		}
	}
	if len(notes) != 1 || !strings.Contains(notes[0], "no free gap") {
		t.Errorf("expected a warning note, got %v", notes)
	}
}

func TestResolveConflicts_NeverIncreasesConflicts(t *testing.T) {
	schedule := model.Schedule{
		event("a", "x", at(0, 9, 0), at(0, 11, 0)),
		event("b", "y", at(0, 9, 30), at(0, 10, 30)),
		event("c", "z", at(0, 10, 0), at(0, 12, 0)),
		event("d", "late", at(0, 18, 0), at(0, 19, 0)),
	}
	before := scheduler.DetectConflicts(schedule)

	resolved, _ := newTestEngine().ResolveConflicts(schedule, before)

	after := scheduler.DetectConflicts(resolved)
	if len(after) > len(before) {
		t.Errorf("resolver made things worse: %d -> %d conflicts", len(before), len(after))
	}
}
