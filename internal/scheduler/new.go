// Package scheduler implements the core scheduling engine: placing parsed
// activities into per-day time slots, aggregating days, detecting and
// resolving overlaps, expanding recurrences and deriving productivity
// metrics. Everything here is a synchronous, deterministic transformation;
// the placement heuristic is greedy, not optimal.
package scheduler

import "time"

// Config holds the engine knobs. Zero values fall back to the defaults
// the service has always used.
type Config struct {
	Location      *time.Location
	DayStart      time.Duration // offset from midnight where flexible placement begins
	BreakLength   time.Duration // inserted between sessions of one activity
	SearchPadding time.Duration // extra cursor advance when skipping a fixed event
	LookaheadDays int           // recurrence expansion window
}

const (
	defaultDayStart      = 9 * time.Hour
	defaultBreakLength   = 15 * time.Minute
	defaultSearchPadding = 15 * time.Minute
	defaultLookaheadDays = 7
)

// Engine is the scheduling engine. It is stateless between calls; concurrent
// requests must each pass their own activity slices.
type Engine struct {
	cfg Config
}

// New creates an Engine, applying defaults for unset config fields.
func New(cfg Config) *Engine {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.DayStart <= 0 {
		cfg.DayStart = defaultDayStart
	}
	if cfg.BreakLength <= 0 {
		cfg.BreakLength = defaultBreakLength
	}
	if cfg.SearchPadding <= 0 {
		cfg.SearchPadding = defaultSearchPadding
	}
	if cfg.LookaheadDays <= 0 {
		cfg.LookaheadDays = defaultLookaheadDays
	}
	return &Engine{cfg: cfg}
}

// startOfDay returns midnight of t's date in the engine's location.
func (e *Engine) startOfDay(t time.Time) time.Time {
	t = t.In(e.cfg.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.cfg.Location)
}
