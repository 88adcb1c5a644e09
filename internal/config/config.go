package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultDatabasePath is where the audit database is created unless
// DATABASE_PATH overrides it.
const DefaultDatabasePath = "./credport.db"

type (
	Config struct {
		HTTP
		Global
		Database
		Audit
		Import
		Auth
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path string
	}

	Audit struct {
		RetentionDays   int    // Days to keep audit events (default: 30)
		CleanupEnabled  bool   // Schedule periodic cleanup of old events
		CleanupSchedule string // Cron format: "0 3 * * *" = daily at 03:00
	}

	Import struct {
		MaxUploadSizeMB int64 // Upper bound for uploaded export files
	}

	Auth struct {
		PasswordHash string // bcrypt hash of the API password; empty disables auth
		BcryptCost   int
	}

	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("audit_cleanup_enabled", true)
	v.SetDefault("audit_cleanup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("import_max_upload_size_mb", 32)
	v.SetDefault("api_password_hash", "") // Auth disabled unless set
	v.SetDefault("auth_bcrypt_cost", 12)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Audit: Audit{
			RetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
			CleanupEnabled:  v.GetBool("AUDIT_CLEANUP_ENABLED"),
			CleanupSchedule: v.GetString("AUDIT_CLEANUP_SCHEDULE"),
		},
		Import: Import{
			MaxUploadSizeMB: v.GetInt64("IMPORT_MAX_UPLOAD_SIZE_MB"),
		},
		Auth: Auth{
			PasswordHash: v.GetString("API_PASSWORD_HASH"),
			BcryptCost:   v.GetInt("AUTH_BCRYPT_COST"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}
