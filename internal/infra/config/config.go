package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"
	_ "time/tzdata" // CRON_TIMEZONE must resolve on minimal CI images

	"github.com/joho/godotenv"
)

// DefaultDashboardLink is used when DASHBOARD_LINK is unset.
const DefaultDashboardLink = "https://tinyurl.com/wcpaz"

// ErrMissingVariable is wrapped by every error about an absent required variable.
var ErrMissingVariable = errors.New("missing environment variable")

// Channel names the delivery transport for reminders.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelTelegram Channel = "telegram"
)

// AppConfig holds configuration that is resolved once at startup.
// Transport credentials are deliberately not part of it: they are only
// required when a reminder is actually sent, see SMSCredentials and TelegramCredentials.
type AppConfig struct {
	DashboardLink     string
	Channel           Channel
	LogLevel          string
	Environment       string
	CronSpecWeekly    string
	CronSpecMonthly   string // Runs daily, the monthly guardrail picks the day
	CronSpecQuarterly string // Runs daily, the quarterly guardrail picks the day
	CronLocation      *time.Location
}

// SMSCredentials are the Twilio account and addressing values needed to send an SMS.
type SMSCredentials struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// TelegramCredentials are needed to deliver a reminder through a Telegram bot.
type TelegramCredentials struct {
	Token  string
	ChatID string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DashboardLink = envOrDefault("DASHBOARD_LINK", DefaultDashboardLink)

	cfg.Channel = Channel(strings.ToLower(envOrDefault("REMINDER_CHANNEL", string(ChannelSMS))))
	if cfg.Channel != ChannelSMS && cfg.Channel != ChannelTelegram {
		return nil, fmt.Errorf("invalid REMINDER_CHANNEL %q: expected sms or telegram", cfg.Channel)
	}

	cfg.LogLevel = strings.ToLower(envOrDefault("LOG_LEVEL", "info"))
	cfg.Environment = strings.ToLower(envOrDefault("ENVIRONMENT", "development"))

	cfg.CronSpecWeekly = envOrDefault("CRON_SPEC_WEEKLY", "0 9 * * 1")       // Default: 9:00 AM on Mondays
	cfg.CronSpecMonthly = envOrDefault("CRON_SPEC_MONTHLY", "0 9 * * *")     // Default: 9:00 AM daily
	cfg.CronSpecQuarterly = envOrDefault("CRON_SPEC_QUARTERLY", "0 9 * * *") // Default: 9:00 AM daily

	loc, err := time.LoadLocation(envOrDefault("CRON_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_TIMEZONE: %w", err)
	}
	cfg.CronLocation = loc

	return cfg, nil
}

// SMSCredentials reads the Twilio variables. All four are required.
func (c *AppConfig) SMSCredentials() (SMSCredentials, error) {
	var creds SMSCredentials
	var err error
	if creds.AccountSID, err = need("TWILIO_ACCOUNT_SID"); err != nil {
		return SMSCredentials{}, err
	}
	if creds.AuthToken, err = need("TWILIO_AUTH_TOKEN"); err != nil {
		return SMSCredentials{}, err
	}
	if creds.From, err = need("TWILIO_FROM"); err != nil {
		return SMSCredentials{}, err
	}
	if creds.To, err = need("TO_PHONE"); err != nil {
		return SMSCredentials{}, err
	}
	return creds, nil
}

// TelegramCredentials reads the bot token and destination chat.
func (c *AppConfig) TelegramCredentials() (TelegramCredentials, error) {
	var creds TelegramCredentials
	var err error
	if creds.Token, err = need("TELEGRAM_TOKEN"); err != nil {
		return TelegramCredentials{}, err
	}
	if creds.ChatID, err = need("TELEGRAM_CHAT_ID"); err != nil {
		return TelegramCredentials{}, err
	}
	return creds, nil
}

func need(name string) (string, error) {
	val := os.Getenv(name)
	if val == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingVariable, name)
	}
	return val, nil
}

func envOrDefault(name, def string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return def
}
