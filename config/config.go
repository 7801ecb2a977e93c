package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Scheduler      SchedulerConfig
	History        HistoryConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SchedulerConfig tunes how schedules are generated.
type SchedulerConfig struct {
	Timezone        string // IANA name, e.g. "Asia/Jakarta"
	DayStart        string // wall-clock "HH:MM" where flexible placement begins
	BreakMinutes    int    // break length between sessions
	LookaheadDays   int    // recurrence expansion window
	RateLimitPerMin int    // per-client request budget
}

// HistoryConfig locates the schedule history database.
type HistoryConfig struct {
	Path string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.DayStart = viper.GetString("scheduler.day_start")
	cfg.Scheduler.BreakMinutes = viper.GetInt("scheduler.break_minutes")
	cfg.Scheduler.LookaheadDays = viper.GetInt("scheduler.lookahead_days")
	cfg.Scheduler.RateLimitPerMin = viper.GetInt("scheduler.rate_limit_per_min")

	cfg.History.Path = viper.GetString("history.path")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("scheduler.timezone", "Asia/Jakarta")
	viper.SetDefault("scheduler.day_start", "09:00")
	viper.SetDefault("scheduler.break_minutes", 15)
	viper.SetDefault("scheduler.lookahead_days", 7)
	viper.SetDefault("scheduler.rate_limit_per_min", 60)

	viper.SetDefault("history.path", "scheduler_history.db")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
