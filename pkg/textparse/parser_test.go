package textparse_test

import (
	"testing"

	"smart-scheduler/pkg/textparse"
)

func TestParse_MultiActivitySentence(t *testing.T) {
	parser := textparse.NewParser()

	res := parser.Parse("besok pagi meeting penting 2 jam, sore belajar AI 3 jam")

	if res.TargetDay != 1 {
		t.Errorf("TargetDay = %d, want 1 (besok)", res.TargetDay)
	}
	if res.Recurrence != nil {
		t.Errorf("unexpected recurrence: %+v", res.Recurrence)
	}
	if len(res.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d: %+v", len(res.Activities), res.Activities)
	}

	// Sorted by priority: belajar (high) before meeting (medium).
	belajar, meeting := res.Activities[0], res.Activities[1]
	if belajar.Name != "belajar ai" {
		t.Errorf("first activity = %q, want %q", belajar.Name, "belajar ai")
	}
	if belajar.Priority != "high" || belajar.Hours != 2 {
		t.Errorf("belajar template not applied: %+v", belajar)
	}
	if meeting.Name != "meeting" {
		t.Errorf("second activity = %q, want %q (time words stripped)", meeting.Name, "meeting")
	}
	if meeting.Priority != "medium" || meeting.Hours != 1 {
		t.Errorf("meeting template not applied: %+v", meeting)
	}
}

func TestParse_DayKeywords(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     int
	}{
		{"Today", "hari ini belajar 2 jam", 0},
		{"Tomorrow", "besok kerja 3 jam", 1},
		{"Day after tomorrow", "lusa meeting 1 jam", 2},
		{"Next week", "minggu depan olahraga", 7},
		{"Default", "belajar 2 jam", 0},
	}

	parser := textparse.NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.Parse(tt.sentence)
			if res.TargetDay != tt.want {
				t.Errorf("Parse(%q).TargetDay = %d, want %d", tt.sentence, res.TargetDay, tt.want)
			}
		})
	}
}

func TestParse_Recurrence(t *testing.T) {
	parser := textparse.NewParser()

	t.Run("Daily", func(t *testing.T) {
		res := parser.Parse("setiap hari olahraga")
		if res.Recurrence == nil || res.Recurrence.Type != "daily" {
			t.Fatalf("expected daily recurrence, got %+v", res.Recurrence)
		}
	})

	t.Run("Specific weekday", func(t *testing.T) {
		res := parser.Parse("setiap senin meeting 1 jam")
		if res.Recurrence == nil || res.Recurrence.Type != "weekly" {
			t.Fatalf("expected weekly recurrence, got %+v", res.Recurrence)
		}
		if len(res.Recurrence.Days) != 1 || res.Recurrence.Days[0] != "monday" {
			t.Errorf("Days = %v, want [monday]", res.Recurrence.Days)
		}
	})

	t.Run("Weekday with hari", func(t *testing.T) {
		res := parser.Parse("setiap hari jumat sholat")
		if res.Recurrence == nil || res.Recurrence.Type != "weekly" {
			t.Fatalf("expected weekly recurrence, got %+v", res.Recurrence)
		}
		if len(res.Recurrence.Days) != 1 || res.Recurrence.Days[0] != "friday" {
			t.Errorf("Days = %v, want [friday]", res.Recurrence.Days)
		}
	})

	t.Run("Minggu reads as Sunday", func(t *testing.T) {
		res := parser.Parse("setiap minggu review")
		if res.Recurrence == nil || res.Recurrence.Type != "weekly" {
			t.Fatalf("expected weekly recurrence, got %+v", res.Recurrence)
		}
		if len(res.Recurrence.Days) != 1 || res.Recurrence.Days[0] != "sunday" {
			t.Errorf("Days = %v, want [sunday]", res.Recurrence.Days)
		}
	})

	t.Run("None", func(t *testing.T) {
		res := parser.Parse("besok belajar 2 jam")
		if res.Recurrence != nil {
			t.Errorf("unexpected recurrence: %+v", res.Recurrence)
		}
	})
}

func TestParse_DurationPatterns(t *testing.T) {
	tests := []struct {
		name         string
		sentence     string
		wantHours    float64
		wantSessions int
	}{
		{"Hours and sessions", "riset 2 jam 3 sesi", 2, 3},
		{"Hours only", "riset 4 jam", 4, 1},
		{"Sessions only", "riset 3 sesi", 1, 3},
		{"Bare activity", "nonton film", 1, 1},
	}

	parser := textparse.NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.Parse(tt.sentence)
			if len(res.Activities) != 1 {
				t.Fatalf("expected 1 activity, got %d", len(res.Activities))
			}
			a := res.Activities[0]
			if a.Hours != tt.wantHours || a.Sessions != tt.wantSessions {
				t.Errorf("got %vh x %d sessions, want %vh x %d",
					a.Hours, a.Sessions, tt.wantHours, tt.wantSessions)
			}
		})
	}
}

func TestParse_FixedTimeTemplate(t *testing.T) {
	parser := textparse.NewParser()

	res := parser.Parse("hari ini makan")
	if len(res.Activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(res.Activities))
	}
	a := res.Activities[0]
	if a.Flexible {
		t.Errorf("makan should not be flexible")
	}
	if len(a.FixedTimes) != 3 {
		t.Errorf("makan should claim 3 meal slots, got %v", a.FixedTimes)
	}
}

func TestParse_TemplateOrder(t *testing.T) {
	parser := textparse.NewParser()

	// "istirahat break" matches two template words; the earlier template
	// wins, every run.
	for i := 0; i < 20; i++ {
		res := parser.Parse("istirahat break 1 jam")
		if len(res.Activities) != 1 {
			t.Fatalf("expected 1 activity, got %d", len(res.Activities))
		}
		a := res.Activities[0]
		if a.Hours != 0.5 {
			t.Fatalf("run %d: hours = %v, want 0.5 (istirahat template)", i, a.Hours)
		}
	}
}

func TestParse_PriorityGuess(t *testing.T) {
	parser := textparse.NewParser()

	res := parser.Parse("main game 2 jam")
	if len(res.Activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(res.Activities))
	}
	if res.Activities[0].Priority != "low" {
		t.Errorf("leisure activity should guess low priority, got %q", res.Activities[0].Priority)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	parser := textparse.NewParser()

	res := parser.Parse("")
	if len(res.Activities) != 0 {
		t.Errorf("empty sentence should parse to no activities, got %+v", res.Activities)
	}
}
