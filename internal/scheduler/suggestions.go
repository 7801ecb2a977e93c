package scheduler

import (
	"fmt"
	"strings"

	"smart-scheduler/internal/model"
)

const maxSuggestions = 5

// highCognitiveLoadWords marks activities that demand sustained concentration.
var highCognitiveLoadWords = []string{"belajar", "analisis", "coding", "strategi"}

// Suggestions derives advisory notes from a finalized schedule: long focus
// streaks without breaks, lopsided energy distribution across the day,
// high-load activities scheduled back-to-back, and break-count tuning.
// At most five suggestions are returned, in that order of precedence.
func Suggestions(schedule model.Schedule) []string {
	if len(schedule) == 0 {
		return nil
	}

	var out []string
	out = append(out, focusStreakSuggestions(schedule)...)
	out = append(out, energySuggestions(schedule)...)
	out = append(out, sequencingSuggestions(schedule)...)
	out = append(out, breakSuggestions(schedule)...)

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func focusStreakSuggestions(schedule model.Schedule) []string {
	var out []string
	streak := 0.0
	for _, ev := range schedule {
		if ev.Kind == model.KindBreak {
			streak = 0
			continue
		}
		streak += ev.End.Sub(ev.Start).Hours()
		if streak >= 3.0 {
			out = append(out, fmt.Sprintf(
				"consider a break after %q (%.1f hours of continuous focus)", ev.Name, streak))
		}
	}
	return out
}

// energySuggestions looks at how productive hours spread over morning
// (06-12), afternoon (12-17) and evening.
func energySuggestions(schedule model.Schedule) []string {
	var morning, afternoon, evening float64
	for _, ev := range schedule {
		if ev.Kind == model.KindBreak {
			continue
		}
		hours := ev.End.Sub(ev.Start).Hours()
		switch h := ev.Start.Hour(); {
		case h >= 6 && h < 12:
			morning += hours
		case h >= 12 && h < 17:
			afternoon += hours
		default:
			evening += hours
		}
	}

	total := morning + afternoon + evening
	if total == 0 {
		return nil
	}

	var out []string
	if morning/total < 0.3 {
		out = append(out, "mornings are underutilized, a good slot for deep work")
	}
	if afternoon/total > 0.6 {
		out = append(out, "afternoons are overloaded, consider moving some work to morning or evening")
	}
	return out
}

func sequencingSuggestions(schedule model.Schedule) []string {
	var out []string
	for i := 0; i+1 < len(schedule); i++ {
		cur, next := schedule[i], schedule[i+1]
		if cur.Kind == model.KindBreak || next.Kind == model.KindBreak {
			continue
		}
		if isHighCognitiveLoad(cur.Name) && isHighCognitiveLoad(next.Name) {
			out = append(out, fmt.Sprintf(
				"consider a break between %q and %q, both need deep concentration", cur.Name, next.Name))
		}
	}
	return out
}

func breakSuggestions(schedule model.Schedule) []string {
	breaks := 0
	productive := 0.0
	for _, ev := range schedule {
		if ev.Kind == model.KindBreak {
			breaks++
			continue
		}
		productive += ev.End.Sub(ev.Start).Hours()
	}
	if productive == 0 {
		return nil
	}

	ideal := int(productive / 2)
	if ideal < 1 {
		ideal = 1
	}

	switch {
	case breaks < ideal:
		return []string{fmt.Sprintf(
			"consider more breaks: %d now, %d recommended for %.1f productive hours", breaks, ideal, productive)}
	case breaks > ideal+1:
		return []string{fmt.Sprintf(
			"consider consolidating breaks: %d for %.1f productive hours", breaks, productive)}
	}
	return nil
}

func isHighCognitiveLoad(name string) bool {
	lower := strings.ToLower(name)
	for _, word := range highCognitiveLoadWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
