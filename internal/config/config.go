package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Analysis providers in order of preference.
const (
	ProviderGroq    = "groq"
	ProviderOpenAI  = "openai"
	ProviderOffline = "offline"
)

// Config holds all configuration for the solar event monitor
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// NASA DONKI feed
	NASAAPIKey   string        `env:"NASA_API_KEY,default=DEMO_KEY"`
	DONKIBaseURL string        `env:"DONKI_BASE_URL,default=https://api.nasa.gov/DONKI"`
	LookbackDays int           `env:"LOOKBACK_DAYS,default=7"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=30s"`
	BulletinFeed string        `env:"BULLETIN_FEED_URL,default=https://www.sidc.be/products/meu"`
	MockupMode   bool          `env:"MOCKUP_MODE,default=false"`
	MocksDir     string        `env:"MOCKS_DIR,default=internal/mocks/data"`

	// WhatsApp Cloud API
	WhatsAppAccessToken   string        `env:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneNumberID string        `env:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppRecipient     string        `env:"MY_PHONE_NUMBER"`
	WhatsAppAPIVersion    string        `env:"WHATSAPP_API_VERSION,default=v21.0"`
	WhatsAppBaseURL       string        `env:"WHATSAPP_BASE_URL,default=https://graph.facebook.com"`
	WhatsAppVerifyToken   string        `env:"WHATSAPP_VERIFY_TOKEN"`
	MessageDelay          time.Duration `env:"MESSAGE_DELAY,default=2s"`

	// LLM analysis
	GroqAPIKey   string `env:"GROQ_API_KEY"`
	GroqBaseURL  string `env:"GROQ_BASE_URL,default=https://api.groq.com/openai/v1"`
	GroqModel    string `env:"GROQ_MODEL,default=llama-3.1-8b-instant"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4o-mini"`

	// Schedules (standard 5-field cron)
	CheckSchedule  string `env:"CHECK_SCHEDULE,default=0 * * * *"`
	DailySchedule  string `env:"DAILY_SCHEDULE,default=0 8 * * *"`
	WeeklySchedule string `env:"WEEKLY_SCHEDULE,default=0 9 * * 1"`
	AstroSchedule  string `env:"ASTRO_SCHEDULE,default=0 18 * * *"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=json"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith loads configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.LookbackDays <= 0 {
		return nil, fmt.Errorf("failed to process config: LOOKBACK_DAYS must be positive, got %d", cfg.LookbackDays)
	}
	return &cfg, nil
}

// WhatsAppConfigured reports whether messages can be delivered to WhatsApp.
func (c *Config) WhatsAppConfigured() bool {
	return c.WhatsAppAccessToken != "" && c.WhatsAppPhoneNumberID != "" && c.WhatsAppRecipient != ""
}

// AnalysisProvider picks the LLM backend: groq, then openai, then offline.
func (c *Config) AnalysisProvider() string {
	switch {
	case c.GroqAPIKey != "":
		return ProviderGroq
	case c.OpenAIAPIKey != "":
		return ProviderOpenAI
	default:
		return ProviderOffline
	}
}

// Lookback is the DONKI query window.
func (c *Config) Lookback() time.Duration {
	return time.Duration(c.LookbackDays) * 24 * time.Hour
}
