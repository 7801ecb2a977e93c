package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Generate turns free Indonesian text (or pre-structured activities)
	// into a conflict-free multi-day schedule with productivity metrics.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// Analytics aggregates productivity statistics from schedule history.
	Analytics(ctx context.Context) (AnalyticsOutput, error)
}
