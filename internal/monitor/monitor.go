// Package monitor runs the scheduled jobs: the hourly alert check and the
// daily, weekly and astronomy reports.
package monitor

import (
	"context"
	"fmt"
	"time"

	"solarwatch/internal/analysis"
	"solarwatch/internal/events"
	"solarwatch/internal/fetchers"
	"solarwatch/internal/logger"
	"solarwatch/internal/metrics"
	"solarwatch/internal/models"
	"solarwatch/internal/notify"
	"solarwatch/internal/reports"

	"github.com/google/uuid"
)

// Job names used for logging and the duration histogram.
const (
	JobCheck  = "check"
	JobDaily  = "daily"
	JobWeekly = "weekly"
	JobAstro  = "astronomy"

	maxHeadlines = 3
)

// Analyzer produces the narrative analysis of a batch of events.
type Analyzer interface {
	Analyze(ctx context.Context, evts []models.SolarEvent) models.Analysis
}

// BulletinSource fetches recent space-weather bulletin headlines.
type BulletinSource interface {
	FetchBulletins(ctx context.Context, url string, since time.Time) ([]fetchers.Bulletin, error)
}

// Options configures a Monitor.
type Options struct {
	Source      fetchers.EventSource
	Analyst     Analyzer
	Sender      notify.Sender
	Bulletins   BulletinSource
	BulletinURL string
	Lookback    time.Duration
	// MessageDelay spaces the messages of the weekly report.
	MessageDelay time.Duration
	Metrics      *metrics.Metrics
	Logger       *logger.Logger
}

// Monitor ties the fetchers, the analysis and the sender together.
type Monitor struct {
	source      fetchers.EventSource
	analyst     Analyzer
	sender      notify.Sender
	bulletins   BulletinSource
	bulletinURL string
	lookback    time.Duration
	delay       time.Duration
	metrics     *metrics.Metrics
	log         *logger.Logger
}

// CheckResult summarizes one alert check.
type CheckResult struct {
	RunID       string    `json:"runId"`
	CheckedAt   time.Time `json:"checkedAt"`
	Fetched     int       `json:"fetched"`
	Alerted     int       `json:"alerted"`
	FailedSends int       `json:"failedSends"`
	FetchErrors []string  `json:"fetchErrors,omitempty"`
}

// New creates a monitor. Source and Sender are required.
func New(opts Options) (*Monitor, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("event source is required")
	}
	if opts.Sender == nil {
		return nil, fmt.Errorf("sender is required")
	}
	lookback := opts.Lookback
	if lookback <= 0 {
		lookback = 7 * 24 * time.Hour
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewMetricsForTesting()
	}
	log := opts.Logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	return &Monitor{
		source:      opts.Source,
		analyst:     opts.Analyst,
		sender:      opts.Sender,
		bulletins:   opts.Bulletins,
		bulletinURL: opts.BulletinURL,
		lookback:    lookback,
		delay:       opts.MessageDelay,
		metrics:     m,
		log:         log.WithComponent("monitor"),
	}, nil
}

// track logs the start and end of a job and records its duration.
func (m *Monitor) track(job string) (string, func(error)) {
	runID := uuid.NewString()
	start := time.Now()
	m.log.Info("Job starting", map[string]interface{}{"job": job, "run_id": runID})

	return runID, func(err error) {
		elapsed := time.Since(start)
		m.metrics.JobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
		fields := map[string]interface{}{"job": job, "run_id": runID, "duration_ms": elapsed.Milliseconds()}
		if err != nil {
			m.log.Error("Job failed", err, fields)
			return
		}
		m.log.Info("Job completed", fields)
	}
}

// fetch loads the lookback window. It fails only when no category answered.
func (m *Monitor) fetch(ctx context.Context, runID string) ([]models.SolarEvent, fetchers.FetchResult, error) {
	from, to := fetchers.Window(m.lookback)
	res := m.source.FetchEvents(ctx, from, to)
	if res.Failed() {
		return nil, res, fmt.Errorf("failed to fetch solar events: %w", res.Err())
	}
	if err := res.Err(); err != nil {
		m.log.Warn("Fetch incomplete", map[string]interface{}{"run_id": runID, "error": err.Error()})
	}
	return res.Events, res, nil
}

func (m *Monitor) analyze(ctx context.Context, evts []models.SolarEvent) models.Analysis {
	if m.analyst != nil {
		return m.analyst.Analyze(ctx, evts)
	}
	level := analysis.DetermineRiskLevel(evts)
	return models.Analysis{
		Summary:     analysis.OfflineAnalysis(evts, level),
		RiskLevel:   level,
		Mode:        models.ModeOffline,
		GeneratedAt: events.Now(),
		EventCount:  len(evts),
	}
}

// CheckForEvents fetches the window and sends one alert per relevant event:
// every severe GST and every event of the other categories.
func (m *Monitor) CheckForEvents(ctx context.Context) (CheckResult, error) {
	runID, done := m.track(JobCheck)
	res := CheckResult{RunID: runID, CheckedAt: events.Now().UTC()}

	evts, fetched, err := m.fetch(ctx, runID)
	for _, cat := range models.Categories {
		if ferr, ok := fetched.Errors[cat]; ok {
			res.FetchErrors = append(res.FetchErrors, fmt.Sprintf("%s: %v", cat, ferr))
		}
	}
	if err != nil {
		done(err)
		return res, err
	}
	m.metrics.LastCheck.Set(float64(res.CheckedAt.Unix()))
	res.Fetched = len(evts)

	relevant := notify.SelectAlertEvents(evts)
	if len(relevant) == 0 {
		m.log.Info("No significant solar events", map[string]interface{}{"run_id": runID, "fetched": len(evts)})
		done(nil)
		return res, nil
	}

	m.log.Info("Sending alerts", map[string]interface{}{"run_id": runID, "alerts": len(relevant)})
	failed, err := notify.SendAlerts(ctx, m.sender, relevant)
	res.Alerted = len(relevant) - failed
	res.FailedSends = failed
	done(err)
	return res, err
}

// SendWeeklyReport sends the weekly message sequence. When anything fails an
// error notice is sent instead of the remaining messages.
func (m *Monitor) SendWeeklyReport(ctx context.Context) error {
	runID, done := m.track(JobWeekly)

	err := m.sendWeekly(ctx, runID)
	if err != nil {
		if nerr := m.sender.Send(ctx, reports.ErrorNotice(err)); nerr != nil {
			m.log.Error("Failed to send error notice", nerr, map[string]interface{}{"run_id": runID})
		}
	}
	done(err)
	return err
}

func (m *Monitor) sendWeekly(ctx context.Context, runID string) error {
	evts, _, err := m.fetch(ctx, runID)
	if err != nil {
		return err
	}
	an := m.analyze(ctx, evts)
	msgs := reports.WeeklyReport(evts, an, events.Now())

	m.log.Info("Sending weekly report", map[string]interface{}{"run_id": runID, "messages": len(msgs), "mode": string(an.Mode)})
	return notify.SendSequence(ctx, m.sender, msgs, m.delay)
}

// SendDailySummary sends today's summary with the latest bulletin headlines.
func (m *Monitor) SendDailySummary(ctx context.Context) error {
	runID, done := m.track(JobDaily)

	evts, _, err := m.fetch(ctx, runID)
	if err != nil {
		done(err)
		return err
	}

	now := events.Now()
	text := reports.DailySummary(evts, now, m.headlines(ctx, runID, now))
	if err := m.sender.Send(ctx, text); err != nil {
		err = fmt.Errorf("failed to send daily summary: %w", err)
		done(err)
		return err
	}
	done(nil)
	return nil
}

// headlines returns up to three bulletin titles of the last day. Bulletin
// failures only cost the section.
func (m *Monitor) headlines(ctx context.Context, runID string, now time.Time) []string {
	if m.bulletins == nil || m.bulletinURL == "" {
		return nil
	}
	items, err := m.bulletins.FetchBulletins(ctx, m.bulletinURL, now.Add(-24*time.Hour))
	if err != nil {
		m.log.Warn("Bulletin fetch failed", map[string]interface{}{"run_id": runID, "error": err.Error()})
		return nil
	}
	var titles []string
	for _, b := range items {
		if len(titles) == maxHeadlines {
			break
		}
		titles = append(titles, b.Title)
	}
	return titles
}

// SendAstronomyAlert sends the hobbyist observation alert.
func (m *Monitor) SendAstronomyAlert(ctx context.Context) error {
	runID, done := m.track(JobAstro)

	evts, _, err := m.fetch(ctx, runID)
	if err != nil {
		done(err)
		return err
	}

	an := m.analyze(ctx, evts)
	text := reports.AstronomyAlert(analysis.AstronomyIndicators(evts), an.RiskLevel, events.Now())
	if err := m.sender.Send(ctx, text); err != nil {
		err = fmt.Errorf("failed to send astronomy alert: %w", err)
		done(err)
		return err
	}
	done(nil)
	return nil
}

// Events fetches the current window for read-only views.
func (m *Monitor) Events(ctx context.Context) ([]models.SolarEvent, error) {
	evts, _, err := m.fetch(ctx, "")
	return evts, err
}

// Analysis fetches the window and analyzes it.
func (m *Monitor) Analysis(ctx context.Context) ([]models.SolarEvent, models.Analysis, error) {
	evts, err := m.Events(ctx)
	if err != nil {
		return nil, models.Analysis{}, err
	}
	return evts, m.analyze(ctx, evts), nil
}
