// Package textparse turns free-text Indonesian activity descriptions
// ("besok pagi meeting penting 2 jam, sore belajar AI 3 jam") into
// normalized activity records. It is fixed-vocabulary pattern matching,
// not NLP: templates, day keywords and duration patterns.
package textparse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	recurringWeekdayRe = regexp.MustCompile(`setiap\s+(?:hari\s+)?(senin|selasa|rabu|kamis|jumat|sabtu|minggu)\b`)
	hoursSessionsRe    = regexp.MustCompile(`^(.+?)\s+(\d+)\s*jam\s+(\d+)\s*sesi$`)
	hoursRe            = regexp.MustCompile(`^(.+?)\s+(\d+)\s*jam$`)
	sessionsRe         = regexp.MustCompile(`^(.+?)\s+(\d+)\s*sesi$`)
	bareActivityRe     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	chunkSplitRe       = regexp.MustCompile(`[,.]|\bdan\b|\bserta\b`)
)

var priorityWeights = map[string]int{"high": 3, "medium": 2, "low": 1}

// Parser extracts activity records from Indonesian sentences.
type Parser struct{}

// NewParser creates a sentence parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts activities, the target day offset and an optional
// recurrence pattern from one sentence. Activities come back sorted by
// descending priority weight, ties keeping sentence order.
func (p *Parser) Parse(sentence string) Result {
	lower := strings.ToLower(strings.TrimSpace(sentence))

	recurrence := detectRecurrence(lower)
	if recurrence != nil {
		lower = stripRecurringKeywords(lower)
	}

	targetDay := detectTargetDay(lower)
	for _, dk := range dayKeywords {
		lower = strings.ReplaceAll(lower, dk.keyword, "")
	}

	activities := p.parseActivities(lower, targetDay)

	sort.SliceStable(activities, func(i, j int) bool {
		return priorityWeights[activities[i].Priority] > priorityWeights[activities[j].Priority]
	})

	return Result{
		Activities: activities,
		TargetDay:  targetDay,
		Recurrence: recurrence,
	}
}

// detectRecurrence finds "setiap senin" and "setiap hari" style patterns.
// "setiap minggu" reads as the weekday minggu (Sunday).
func detectRecurrence(sentence string) *Pattern {
	if !strings.Contains(sentence, "setiap") {
		return nil
	}

	if matches := recurringWeekdayRe.FindAllStringSubmatch(sentence, -1); len(matches) > 0 {
		pattern := &Pattern{Type: "weekly"}
		for _, m := range matches {
			pattern.Days = append(pattern.Days, indonesianWeekdays[m[1]])
		}
		return pattern
	}

	if strings.Contains(sentence, "setiap hari") {
		return &Pattern{Type: "daily"}
	}

	return nil
}

func stripRecurringKeywords(sentence string) string {
	sentence = recurringWeekdayRe.ReplaceAllString(sentence, "")
	for _, phrase := range []string{"setiap hari", "setiap"} {
		sentence = strings.ReplaceAll(sentence, phrase, "")
	}
	return sentence
}

func detectTargetDay(sentence string) int {
	for _, dk := range dayKeywords {
		if strings.Contains(sentence, dk.keyword) {
			return dk.offset
		}
	}
	return 0
}

func (p *Parser) parseActivities(sentence string, targetDay int) []Activity {
	for _, filler := range fillerWords {
		sentence = regexp.MustCompile(`\b`+filler+`\b`).ReplaceAllString(sentence, "")
	}

	var activities []Activity
	for _, chunk := range chunkSplitRe.Split(sentence, -1) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) < 3 {
			continue
		}
		if a, ok := parseSingleActivity(chunk); ok {
			a.TargetDay = targetDay
			activities = append(activities, a)
		}
	}
	return activities
}

// parseSingleActivity matches one chunk against the duration/session
// patterns, most specific first.
func parseSingleActivity(chunk string) (Activity, bool) {
	if m := hoursSessionsRe.FindStringSubmatch(chunk); m != nil {
		hours, _ := strconv.Atoi(m[2])
		sessions, _ := strconv.Atoi(m[3])
		return buildActivity(m[1], float64(hours), sessions), true
	}
	if m := hoursRe.FindStringSubmatch(chunk); m != nil {
		hours, _ := strconv.Atoi(m[2])
		return buildActivity(m[1], float64(hours), 1), true
	}
	if m := sessionsRe.FindStringSubmatch(chunk); m != nil {
		sessions, _ := strconv.Atoi(m[2])
		return buildActivity(m[1], 1, sessions), true
	}
	if bareActivityRe.MatchString(chunk) {
		return buildActivity(chunk, 1, 1), true
	}
	return Activity{}, false
}

// buildActivity applies a template when the name contains a known activity
// word, otherwise guesses a priority from the name.
func buildActivity(name string, hours float64, sessions int) Activity {
	name = cleanActivityName(strings.TrimSpace(name))
	lower := strings.ToLower(name)

	for _, tpl := range activityTemplates {
		if strings.Contains(lower, tpl.word) {
			return Activity{
				Name:       name,
				Hours:      tpl.duration,
				Sessions:   sessions,
				Priority:   tpl.priority,
				FixedTimes: tpl.fixedTimes,
				Flexible:   len(tpl.fixedTimes) == 0,
			}
		}
	}

	priority := "medium"
	if containsAny(lower, highPriorityWords) {
		priority = "high"
	} else if containsAny(lower, lowPriorityWords) {
		priority = "low"
	}

	return Activity{
		Name:     name,
		Hours:    hours,
		Sessions: sessions,
		Priority: priority,
		Flexible: true,
	}
}

// cleanActivityName drops time and urgency keywords from the name.
func cleanActivityName(name string) string {
	words := strings.Fields(name)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := timeKeywords[strings.ToLower(w)]; ok {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return name
	}
	return strings.Join(kept, " ")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
