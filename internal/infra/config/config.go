package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken      string
	TelegramToken       string
	TelegramChatID      int64
	LogLevel            string
	Environment         string
	LogFile             string
	PollInterval        time.Duration
	CronSpecDailyDigest string
}

// Load reads configuration from environment variables and .env file (if present).
// The three tokens are required and have no defaults; a missing one fails the
// whole startup before any network activity.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = "homework_bot.log"
	}

	pollIntervalStr := os.Getenv("POLL_INTERVAL")
	if pollIntervalStr == "" {
		cfg.PollInterval = 10 * time.Minute // Default: the cadence the review service expects
	} else {
		cfg.PollInterval, err = time.ParseDuration(pollIntervalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
		}
		if cfg.PollInterval <= 0 {
			return nil, fmt.Errorf("POLL_INTERVAL must be positive, got %s", cfg.PollInterval)
		}
	}

	// An explicitly empty CRON_SPEC_DAILY_DIGEST disables the digest, so the
	// default applies only when the variable is absent entirely.
	digestSpec, ok := os.LookupEnv("CRON_SPEC_DAILY_DIGEST")
	if !ok {
		digestSpec = "0 9 * * *" // Default: 9 AM daily
	}
	cfg.CronSpecDailyDigest = digestSpec

	return cfg, nil
}
