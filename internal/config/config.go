package config

import (
	"strings"

	"github.com/spf13/viper"
)

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

type (
	Config struct {
		HTTP
		Global
		Database
		API
		Seed
		Audit
		Log
		Mode
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // GORM logger level: silent, error, warn, info
	}
	API struct {
		MaxPageSize    int
		AllowedOrigins []string
	}
	Seed struct {
		OnStartup bool
	}
	Audit struct {
		Enabled       bool
		RetentionDays int // Days to keep audit events, 0 keeps them forever
	}
	Log struct {
		Level  string
		Format LogFormat
		File   string // Rotated log file; empty logs to stderr
	}
	Mode struct {
		ReadOnly     bool     // Reject every write with 403
		AllowedPaths []string // Path prefixes that still accept writes in read-only mode
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("max_page_size", DefaultMaxPageSize)
	v.SetDefault("allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("seed_on_startup", true)
	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", string(LogFormatText))
	v.SetDefault("log_file", "")
	v.SetDefault("read_only", false)
	v.SetDefault("read_only_allowed_paths", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		API: API{
			MaxPageSize:    v.GetInt("MAX_PAGE_SIZE"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		Seed: Seed{
			OnStartup: v.GetBool("SEED_ON_STARTUP"),
		},
		Audit: Audit{
			Enabled:       v.GetBool("AUDIT_ENABLED"),
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: LogFormat(strings.ToLower(v.GetString("LOG_FORMAT"))),
			File:   v.GetString("LOG_FILE"),
		},
		Mode: Mode{
			ReadOnly:     v.GetBool("READ_ONLY"),
			AllowedPaths: splitList(v.GetString("READ_ONLY_ALLOWED_PATHS")),
		},
	}
}

// splitList parses a comma separated environment value.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
