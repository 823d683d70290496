// Package app wires the configured components together for the service and
// the command-line tools.
package app

import (
	"fmt"
	"time"

	"solarwatch/internal/config"
	"solarwatch/internal/fetchers"
	"solarwatch/internal/llm"
	"solarwatch/internal/logger"
	"solarwatch/internal/menu"
	"solarwatch/internal/metrics"
	"solarwatch/internal/mocks"
	"solarwatch/internal/models"
	"solarwatch/internal/monitor"
	"solarwatch/internal/notify"
)

// App holds the wired components.
type App struct {
	Config  *config.Config
	Metrics *metrics.Metrics
	Source  fetchers.EventSource
	Analyst *llm.Analyst
	Sender  notify.Sender
	// WhatsApp is nil when the Cloud API is not configured.
	WhatsApp  *notify.WhatsAppSender
	Bulletins *fetchers.BulletinFetcher
	Monitor   *monitor.Monitor
	Menu      *menu.Menu
}

// New builds every component from cfg. A nil m gets unregistered metrics.
func New(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (*App, error) {
	if m == nil {
		m = metrics.NewMetricsForTesting()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	a := &App{
		Config:    cfg,
		Metrics:   m,
		Source:    NewSource(cfg, m, log),
		Analyst:   llm.NewAnalyst(AnalystConfig(cfg), m, log),
		Bulletins: fetchers.NewBulletinFetcher(cfg.FetchTimeout),
	}

	var out notify.Sender = notify.ConsoleSender{}
	if cfg.WhatsAppConfigured() {
		a.WhatsApp = notify.NewWhatsAppSender(notify.WhatsAppConfig{
			BaseURL:       cfg.WhatsAppBaseURL,
			APIVersion:    cfg.WhatsAppAPIVersion,
			PhoneNumberID: cfg.WhatsAppPhoneNumberID,
			AccessToken:   cfg.WhatsAppAccessToken,
			Recipient:     cfg.WhatsAppRecipient,
			Timeout:       cfg.FetchTimeout,
		})
		out = a.WhatsApp
	} else {
		log.Warn("WhatsApp not configured, messages go to stdout")
	}
	a.Sender = notify.NewInstrumented(out, m, log)

	mon, err := monitor.New(monitor.Options{
		Source:       a.Source,
		Analyst:      a.Analyst,
		Sender:       a.Sender,
		Bulletins:    a.Bulletins,
		BulletinURL:  cfg.BulletinFeed,
		Lookback:     cfg.Lookback(),
		MessageDelay: cfg.MessageDelay,
		Metrics:      m,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create monitor: %w", err)
	}
	a.Monitor = mon

	a.Menu = menu.New(menu.Options{
		Source:   a.Source,
		Lookback: cfg.Lookback(),
		Analyst:  a.Analyst,
		Location: time.Local,
		Logger:   log,
	})

	log.Info("Components ready", map[string]interface{}{
		"mockup":   cfg.MockupMode,
		"analysis": cfg.AnalysisProvider(),
		"whatsapp": cfg.WhatsAppConfigured(),
	})
	return a, nil
}

// NewSource returns the fixture service in mockup mode and the live DONKI
// fetcher otherwise.
func NewSource(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) fetchers.EventSource {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	if cfg.MockupMode {
		log.Info("Mockup mode enabled", map[string]interface{}{"mocks_dir": cfg.MocksDir})
		svc := mocks.NewMockService(cfg.MocksDir)
		svc.Rebase = true
		return svc
	}
	return fetchers.NewDataFetcher(fetchers.Options{
		BaseURL: cfg.DONKIBaseURL,
		APIKey:  cfg.NASAAPIKey,
		Timeout: cfg.FetchTimeout,
		Metrics: m,
		Logger:  log,
	})
}

// AnalystConfig maps the configured provider to the analyst backend.
func AnalystConfig(cfg *config.Config) llm.Config {
	switch cfg.AnalysisProvider() {
	case config.ProviderGroq:
		return llm.Config{Mode: models.ModeGroq, APIKey: cfg.GroqAPIKey, BaseURL: cfg.GroqBaseURL, Model: cfg.GroqModel}
	case config.ProviderOpenAI:
		return llm.Config{Mode: models.ModeOpenAI, APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel}
	default:
		return llm.Config{Mode: models.ModeOffline}
	}
}
