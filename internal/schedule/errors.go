package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrNoActivities    = errors.New("no activities recognized in input")
	ErrInvalidActivity = errors.New("invalid activity")
)
