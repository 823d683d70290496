package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"solarwatch/internal/logger"
	"solarwatch/internal/models"
	"solarwatch/internal/monitor"
	"solarwatch/internal/reports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultReplyTimeout = 2 * time.Minute

// Monitor is the part of monitor.Monitor the HTTP surface drives.
type Monitor interface {
	CheckForEvents(ctx context.Context) (monitor.CheckResult, error)
	Events(ctx context.Context) ([]models.SolarEvent, error)
	Analysis(ctx context.Context) ([]models.SolarEvent, models.Analysis, error)
}

// Responder answers menu commands.
type Responder interface {
	Handle(ctx context.Context, input string) string
}

// Replier sends a text message to an explicit recipient.
type Replier interface {
	SendTo(ctx context.Context, to, text string) error
}

// Options configures a Server.
type Options struct {
	Monitor Monitor
	Menu    Responder
	// Replier answers inbound WhatsApp messages; nil disables replies.
	Replier Replier
	// Owner is the only number whose inbound messages are answered.
	Owner       string
	VerifyToken string
	// TimelineDays is the span of the Kp timeline image.
	TimelineDays int
	// ReplyTimeout bounds answering one webhook delivery. Defaults to 2m.
	ReplyTimeout time.Duration
	Gatherer     prometheus.Gatherer
	Logger       *logger.Logger
}

// Server represents the HTTP surface of the monitor
type Server struct {
	monitor     Monitor
	menu        Responder
	replier     Replier
	owner       string
	verifyToken string
	days        int
	html        *reports.HTMLBuilder
	metrics     http.Handler
	log         *logger.Logger

	replyTimeout time.Duration
	replies      sync.WaitGroup
	checkMutex   sync.Mutex
}

// NewServer creates a new server instance
func NewServer(opts Options) (*Server, error) {
	if opts.Monitor == nil {
		return nil, fmt.Errorf("monitor is required")
	}
	if opts.Menu == nil {
		return nil, fmt.Errorf("menu is required")
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	log := opts.Logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	days := opts.TimelineDays
	if days < 2 {
		days = 7
	}
	replyTimeout := opts.ReplyTimeout
	if replyTimeout <= 0 {
		replyTimeout = defaultReplyTimeout
	}

	return &Server{
		monitor:     opts.Monitor,
		menu:        opts.Menu,
		replier:     opts.Replier,
		owner:       digits(opts.Owner),
		verifyToken: opts.VerifyToken,
		days:        days,
		html:        reports.NewHTMLBuilder(),
		metrics:     promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		log:         log.WithComponent("server"),

		replyTimeout: replyTimeout,
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/healthz", s.HandleHealth)
	mux.HandleFunc("/readyz", s.HandleReady)
	mux.Handle("/metrics", s.metrics)

	mux.HandleFunc("/check", s.HandleCheck)
	mux.HandleFunc("/report", s.HandleReport)
	mux.HandleFunc("/chart.png", s.HandleChart)
	mux.HandleFunc("/timeline.png", s.HandleTimeline)
	mux.HandleFunc("/events", s.HandleEvents)
	mux.HandleFunc("/menu", s.HandleMenu)
	mux.HandleFunc("/webhook/whatsapp", s.HandleWebhook)

	return mux
}
