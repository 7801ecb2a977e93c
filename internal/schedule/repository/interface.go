package repository

import "context"

// HistoryRepository persists generated schedules and serves aggregate
// productivity analytics over them.
type HistoryRepository interface {
	Record(ctx context.Context, opt RecordOptions) error
	QueryAnalytics(ctx context.Context) (Analytics, error)
}
