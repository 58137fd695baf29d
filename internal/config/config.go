package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode     bool     `env:"IS_TEST_MODE"`
	Port           uint16   `env:"PORT" envDefault:"8080"`
	BaseURL        url.URL  `env:"BASE_URL"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	TelegramBotToken       string        `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramBaseURL        url.URL       `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	TelegramURLSecret      string        `env:"TELEGRAM_URL_SECRET,required"`
	TelegramRequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"5s"`

	CommandPrefix        string        `env:"COMMAND_PREFIX" envDefault:"/"`
	Timezone             string        `env:"TIMEZONE" envDefault:"America/New_York"`
	ReminderPollInterval time.Duration `env:"REMINDER_POLL_INTERVAL" envDefault:"500ms"`
	QuizAnswerTimeout    time.Duration `env:"QUIZ_ANSWER_TIMEOUT" envDefault:"60s"`
	MessageLimit         int           `env:"MESSAGE_LIMIT" envDefault:"2000"`

	EventsAPIURL         url.URL       `env:"EVENTS_API_URL"`
	EventsAPIToken       string        `env:"EVENTS_API_TOKEN"`
	EventsRequestTimeout time.Duration `env:"EVENTS_REQUEST_TIMEOUT" envDefault:"5s"`

	RedisURL         string `env:"REDIS_URL"`
	CommandRateLimit uint16 `env:"COMMAND_RATE_LIMIT" envDefault:"30"`

	SentryDsn string `env:"SENTRY_DSN"`

	Location *time.Location `env:"-"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}
	return Parse(env.Options{})
}

func Parse(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, opts); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	config.Location = location

	if config.ReminderPollInterval <= 0 {
		return nil, fmt.Errorf("REMINDER_POLL_INTERVAL must be positive")
	}
	if config.QuizAnswerTimeout <= 0 {
		return nil, fmt.Errorf("QUIZ_ANSWER_TIMEOUT must be positive")
	}
	if config.MessageLimit <= 0 {
		return nil, fmt.Errorf("MESSAGE_LIMIT must be positive")
	}
	if config.CommandPrefix == "" {
		return nil, fmt.Errorf("COMMAND_PREFIX must not be empty")
	}
	return config, nil
}

func (c *Config) EventsEnabled() bool {
	return c.EventsAPIURL.Host != ""
}

func (c *Config) TelegramWebhookURL() *url.URL {
	return c.BaseURL.JoinPath("telegram", "updates", c.TelegramURLSecret)
}
