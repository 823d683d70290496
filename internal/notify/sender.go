// Package notify delivers text messages to the single configured recipient.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"solarwatch/internal/logger"
	"solarwatch/internal/metrics"

	"github.com/go-resty/resty/v2"
)

// Sender delivers one text message.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// WhatsAppConfig holds the Cloud API credentials and endpoint.
type WhatsAppConfig struct {
	BaseURL       string
	APIVersion    string
	PhoneNumberID string
	AccessToken   string
	Recipient     string
	Timeout       time.Duration
}

// WhatsAppSender posts text messages through the WhatsApp Cloud API.
type WhatsAppSender struct {
	client *resty.Client
	cfg    WhatsAppConfig
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

// NewWhatsAppSender creates a sender for the configured recipient.
func NewWhatsAppSender(cfg WhatsAppConfig) *WhatsAppSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := resty.New()
	client.SetTimeout(cfg.Timeout)

	return &WhatsAppSender{client: client, cfg: cfg}
}

// Endpoint is the messages URL of the configured phone number.
func (s *WhatsAppSender) Endpoint() string {
	return fmt.Sprintf("%s/%s/%s/messages", strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.APIVersion, s.cfg.PhoneNumberID)
}

// Send posts one text message. Any non-2xx status is an error.
func (s *WhatsAppSender) Send(ctx context.Context, text string) error {
	return s.SendTo(ctx, s.cfg.Recipient, text)
}

// SendTo posts one text message to an explicit number, used to answer
// inbound webhook messages.
func (s *WhatsAppSender) SendTo(ctx context.Context, to, text string) error {
	if s.cfg.AccessToken == "" || s.cfg.PhoneNumberID == "" || to == "" {
		return fmt.Errorf("missing access token, phone number id or recipient")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(whatsAppMessage{
			MessagingProduct: "whatsapp",
			To:               to,
			Type:             "text",
			Text:             whatsAppText{Body: text},
		}).
		Post(s.Endpoint())
	if err != nil {
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("WhatsApp API returned status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

// ConsoleSender prints messages between rulers; used when WhatsApp is not configured.
type ConsoleSender struct {
	Out io.Writer
}

// Send writes the message to Out (stdout when nil).
func (c ConsoleSender) Send(_ context.Context, text string) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	line := strings.Repeat("=", 50)
	if _, err := fmt.Fprintf(out, "%s\n%s\n%s\n", line, text, line); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// Instrumented wraps a Sender with metrics and logging.
type Instrumented struct {
	next    Sender
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewInstrumented wraps next. Nil metrics or logger fall back to defaults.
func NewInstrumented(next Sender, m *metrics.Metrics, log *logger.Logger) *Instrumented {
	if m == nil {
		m = metrics.NewMetricsForTesting()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Instrumented{next: next, metrics: m, log: log.WithComponent("sender")}
}

// Send delegates and records the outcome.
func (i *Instrumented) Send(ctx context.Context, text string) error {
	err := i.next.Send(ctx, text)
	i.metrics.MessagesSent.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		i.log.Error("Message delivery failed", err, map[string]interface{}{"preview": preview(text)})
		return err
	}
	i.log.Info("Message sent", map[string]interface{}{"preview": preview(text)})
	return nil
}

func preview(text string) string {
	r := []rune(text)
	if len(r) > 50 {
		return string(r[:50]) + "..."
	}
	return text
}
