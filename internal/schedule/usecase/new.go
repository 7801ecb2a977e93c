package usecase

import (
	"time"

	"smart-scheduler/internal/schedule/repository"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/gcalendar"
	pkgLog "smart-scheduler/pkg/log"
	"smart-scheduler/pkg/textparse"
)

type implUseCase struct {
	l          pkgLog.Logger
	engine     *scheduler.Engine
	parser     *textparse.Parser
	repo       repository.HistoryRepository
	calendar   *gcalendar.Client
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a new schedule UseCase instance. calendar may be nil, which
// disables calendar export. now may be nil and defaults to time.Now.
func New(
	l pkgLog.Logger,
	engine *scheduler.Engine,
	parser *textparse.Parser,
	repo repository.HistoryRepository,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:          l,
		engine:     engine,
		parser:     parser,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        now,
	}
}
