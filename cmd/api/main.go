package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-scheduler/config"
	"smart-scheduler/internal/httpserver"
	"smart-scheduler/internal/schedule/repository/sqlite"
	"smart-scheduler/internal/schedule/usecase"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/textparse"
)

// @title       Smart Scheduler API
// @description AI-powered schedule generation from Indonesian free text, with conflict resolution, productivity metrics and history analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Scheduling engine
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		loc = time.UTC
	}

	dayStart, err := time.Parse("15:04", cfg.Scheduler.DayStart)
	if err != nil {
		logger.Warnf(ctx, "Invalid day_start %q, falling back to 09:00: %v", cfg.Scheduler.DayStart, err)
		dayStart, _ = time.Parse("15:04", "09:00")
	}

	engine := scheduler.New(scheduler.Config{
		Location:      loc,
		DayStart:      time.Duration(dayStart.Hour())*time.Hour + time.Duration(dayStart.Minute())*time.Minute,
		BreakLength:   time.Duration(cfg.Scheduler.BreakMinutes) * time.Minute,
		LookaheadDays: cfg.Scheduler.LookaheadDays,
	})

	// 4. History repository
	historyRepo, err := sqlite.New(logger, cfg.History.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open history database: %v", err)
		return
	}
	defer historyRepo.Close()

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Schedule UseCase
	scheduleUC := usecase.New(
		logger,
		engine,
		textparse.NewParser(),
		historyRepo,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		cfg.Scheduler.Timezone,
		nil,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleUC:      scheduleUC,
		RateLimitPerMin: cfg.Scheduler.RateLimitPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
