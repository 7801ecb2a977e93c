package textparse

// template carries the well-known defaults for a recognized activity.
type template struct {
	word       string
	duration   float64
	priority   string
	fixedTimes []string
}

// activityTemplates lists known Indonesian activity words with their
// defaults. Activities with fixed times (prayers, meals) claim specific
// wall-clock slots; the rest are flexible. Matched in order, first hit wins.
var activityTemplates = []template{
	{word: "sholat", duration: 1, priority: "high", fixedTimes: []string{"05:00", "12:30", "15:30", "18:00", "19:30"}},
	{word: "makan", duration: 1, priority: "high", fixedTimes: []string{"08:00", "12:00", "19:00"}},
	{word: "olahraga", duration: 1.5, priority: "medium"},
	{word: "istirahat", duration: 0.5, priority: "low"},
	{word: "break", duration: 0.25, priority: "low"},
	{word: "belajar", duration: 2, priority: "high"},
	{word: "kerja", duration: 3, priority: "high"},
	{word: "meeting", duration: 1, priority: "medium"},
}

// dayKeywords resolve relative Indonesian day references to day offsets.
// Ordered so "minggu depan" is tested before the bare weekday "minggu".
var dayKeywords = []struct {
	keyword string
	offset  int
}{
	{"hari ini", 0},
	{"besok", 1},
	{"lusa", 2},
	{"minggu depan", 7},
}

// indonesianWeekdays maps Indonesian weekday names to English ones.
var indonesianWeekdays = map[string]string{
	"senin":  "monday",
	"selasa": "tuesday",
	"rabu":   "wednesday",
	"kamis":  "thursday",
	"jumat":  "friday",
	"sabtu":  "saturday",
	"minggu": "sunday",
}

// fillerWords are dropped before activity extraction.
var fillerWords = []string{
	"hari", "ini", "saya", "mau", "aku", "ingin", "yang", "dan", "dengan", "akan",
}

// timeKeywords are removed from activity names after parsing.
var timeKeywords = map[string]struct{}{
	"pagi": {}, "siang": {}, "sore": {}, "malam": {},
	"besok": {}, "lusa": {}, "urgent": {}, "penting": {},
	"flexible": {}, "waktu": {},
}

// highPriorityWords / lowPriorityWords guess a priority for activities
// without a template.
var (
	highPriorityWords = []string{"belajar", "kerja", "meeting", "project", "ai", "coding"}
	lowPriorityWords  = []string{"main", "hiburan", "social", "game", "nonton"}
)
