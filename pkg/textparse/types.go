package textparse

// Pattern is a recurrence rule detected in the sentence.
type Pattern struct {
	Type string   // "daily" or "weekly"
	Days []string // lowercase English weekday names; weekly only
}

// Activity is one activity record extracted from the input sentence.
type Activity struct {
	Name       string
	Hours      float64 // duration per session
	Sessions   int
	Priority   string   // high / medium / low
	FixedTimes []string // wall-clock "HH:MM" starts; empty when flexible
	Flexible   bool
	TargetDay  int
}

// Result is the full parse of one input sentence.
type Result struct {
	Activities []Activity
	TargetDay  int
	Recurrence *Pattern
}
