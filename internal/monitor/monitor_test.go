package monitor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/fetchers"
	"solarwatch/internal/metrics"
	"solarwatch/internal/models"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 11, 12, 0, 0, 0, time.UTC)

func freezeClock(t *testing.T) {
	t.Helper()
	events.SetClock(clockwork.NewFakeClockAt(fixedNow))
	t.Cleanup(func() { events.SetClock(nil) })
}

type stubSource struct {
	evts []models.SolarEvent
	errs map[models.Category]error
}

func (s *stubSource) FetchEvents(_ context.Context, _, _ time.Time) fetchers.FetchResult {
	errs := s.errs
	if errs == nil {
		errs = map[models.Category]error{}
	}
	return fetchers.FetchResult{Events: s.evts, Errors: errs}
}

func allFailing() *stubSource {
	errs := map[models.Category]error{}
	for _, cat := range models.Categories {
		errs[cat] = errors.New("unavailable")
	}
	return &stubSource{errs: errs}
}

type recorder struct {
	mu     sync.Mutex
	sent   []string
	failOn map[int]bool
	calls  int
}

func (r *recorder) Send(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failOn[r.calls] {
		return errors.New("boom")
	}
	r.sent = append(r.sent, text)
	return nil
}

type stubBulletins struct {
	items []fetchers.Bulletin
	err   error
	since time.Time
}

func (s *stubBulletins) FetchBulletins(_ context.Context, _ string, since time.Time) ([]fetchers.Bulletin, error) {
	s.since = since
	return s.items, s.err
}

type stubAnalyzer struct{ calls int }

func (s *stubAnalyzer) Analyze(_ context.Context, evts []models.SolarEvent) models.Analysis {
	s.calls++
	return models.Analysis{
		Summary:    "**Resumo** do modelo",
		RiskLevel:  models.RiskHigh,
		Mode:       models.ModeGroq,
		Generated:  true,
		EventCount: len(evts),
	}
}

func ev(id string, cat models.Category, sev models.Severity, hoursAgo int) models.SolarEvent {
	return models.SolarEvent{
		ID:            id,
		Category:      cat,
		Severity:      sev,
		OccurredAt:    fixedNow.Add(-time.Duration(hoursAgo) * time.Hour),
		Description:   "Evento " + id,
		AffectedAreas: []string{"América do Norte", "Europa", "Ásia"},
		Link:          "https://ccmc.gsfc.nasa.gov/donki/",
	}
}

func newMonitor(t *testing.T, opts Options) *Monitor {
	t.Helper()
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewMetricsForTesting()
	}
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func TestNewRequiresSourceAndSender(t *testing.T) {
	_, err := New(Options{Sender: &recorder{}})
	assert.EqualError(t, err, "event source is required")

	_, err = New(Options{Source: &stubSource{}})
	assert.EqualError(t, err, "sender is required")

	m, err := New(Options{Source: &stubSource{}, Sender: &recorder{}})
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, m.lookback)
}

func TestCheckForEventsAlertsRelevantEvents(t *testing.T) {
	freezeClock(t)

	src := &stubSource{evts: []models.SolarEvent{
		ev("gst-severe", models.CategoryGST, models.SeverityHigh, 1),
		ev("gst-moderate", models.CategoryGST, models.SeverityModerate, 2),
		ev("cme", models.CategoryCME, models.SeverityUndefined, 3),
		ev("flr", models.CategoryFLR, models.SeverityUndefined, 4),
	}}
	out := &recorder{}
	met := metrics.NewMetricsForTesting()
	m := newMonitor(t, Options{Source: src, Sender: out, Metrics: met})

	res, err := m.CheckForEvents(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, fixedNow, res.CheckedAt)
	assert.Equal(t, 4, res.Fetched)
	assert.Equal(t, 3, res.Alerted)
	assert.Zero(t, res.FailedSends)
	assert.Empty(t, res.FetchErrors)

	require.Len(t, out.sent, 3)
	assert.Contains(t, out.sent[0], "Evento gst-severe")
	assert.Contains(t, out.sent[1], "Evento cme")
	assert.Contains(t, out.sent[2], "Evento flr")
	for _, msg := range out.sent {
		assert.NotContains(t, msg, "gst-moderate")
	}

	assert.Equal(t, float64(fixedNow.Unix()), testutil.ToFloat64(met.LastCheck))
	assert.Equal(t, 1, testutil.CollectAndCount(met.JobDuration))
}

func TestCheckForEventsQuiet(t *testing.T) {
	freezeClock(t)

	out := &recorder{}
	src := &stubSource{evts: []models.SolarEvent{ev("gst", models.CategoryGST, models.SeverityModerate, 1)}}
	m := newMonitor(t, Options{Source: src, Sender: out})

	res, err := m.CheckForEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Fetched)
	assert.Zero(t, res.Alerted)
	assert.Empty(t, out.sent)
}

func TestCheckForEventsPartialFetch(t *testing.T) {
	freezeClock(t)

	src := &stubSource{
		evts: []models.SolarEvent{ev("cme", models.CategoryCME, models.SeverityUndefined, 1)},
		errs: map[models.Category]error{models.CategorySEP: errors.New("timeout")},
	}
	out := &recorder{}
	m := newMonitor(t, Options{Source: src, Sender: out})

	res, err := m.CheckForEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"SEP: timeout"}, res.FetchErrors)
	assert.Equal(t, 1, res.Alerted)
}

func TestCheckForEventsAllCategoriesFail(t *testing.T) {
	freezeClock(t)

	out := &recorder{}
	met := metrics.NewMetricsForTesting()
	m := newMonitor(t, Options{Source: allFailing(), Sender: out, Metrics: met})

	res, err := m.CheckForEvents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch solar events")
	assert.Len(t, res.FetchErrors, len(models.Categories))
	assert.Empty(t, out.sent)
	assert.Zero(t, testutil.ToFloat64(met.LastCheck))
}

func TestCheckForEventsCountsFailedSends(t *testing.T) {
	freezeClock(t)

	src := &stubSource{evts: []models.SolarEvent{
		ev("a", models.CategoryCME, models.SeverityUndefined, 1),
		ev("b", models.CategoryFLR, models.SeverityUndefined, 2),
		ev("c", models.CategoryHSS, models.SeverityUndefined, 3),
	}}
	out := &recorder{failOn: map[int]bool{2: true}}
	m := newMonitor(t, Options{Source: src, Sender: out})

	res, err := m.CheckForEvents(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, res.Alerted)
	assert.Equal(t, 1, res.FailedSends)
	assert.Len(t, out.sent, 2)
}

func TestSendWeeklyReport(t *testing.T) {
	freezeClock(t)

	src := &stubSource{evts: []models.SolarEvent{
		ev("gst", models.CategoryGST, models.SeverityHigh, 2),
		ev("cme", models.CategoryCME, models.SeverityUndefined, 30),
	}}
	out := &recorder{}
	analyst := &stubAnalyzer{}
	m := newMonitor(t, Options{Source: src, Sender: out, Analyst: analyst})

	require.NoError(t, m.SendWeeklyReport(context.Background()))
	assert.Equal(t, 1, analyst.calls)
	require.Len(t, out.sent, 8)
	assert.True(t, strings.HasPrefix(out.sent[0], "🌞 RELATÓRIO SEMANAL DE ATIVIDADE SOLAR"))
	assert.Contains(t, out.sent[2], "*Resumo* do modelo")
	assert.True(t, strings.HasPrefix(out.sent[7], "🔬 DADOS TÉCNICOS"))
}

func TestSendWeeklyReportOfflineSkipsAIMessage(t *testing.T) {
	freezeClock(t)

	out := &recorder{}
	m := newMonitor(t, Options{Source: &stubSource{}, Sender: out})

	require.NoError(t, m.SendWeeklyReport(context.Background()))
	assert.Len(t, out.sent, 6)
}

func TestSendWeeklyReportSendsErrorNotice(t *testing.T) {
	freezeClock(t)

	out := &recorder{}
	m := newMonitor(t, Options{Source: allFailing(), Sender: out})

	err := m.SendWeeklyReport(context.Background())
	require.Error(t, err)
	require.Len(t, out.sent, 1)
	assert.True(t, strings.HasPrefix(out.sent[0], "❌ Erro ao gerar relatório automático."))
	assert.Contains(t, out.sent[0], "failed to fetch solar events")
}

func TestSendWeeklyReportStopsOnSendFailure(t *testing.T) {
	freezeClock(t)

	out := &recorder{failOn: map[int]bool{3: true}}
	m := newMonitor(t, Options{Source: &stubSource{}, Sender: out})

	err := m.SendWeeklyReport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send message 3 of 6")
	// two report messages, then the notice
	require.Len(t, out.sent, 3)
	assert.True(t, strings.HasPrefix(out.sent[2], "❌ Erro ao gerar relatório automático."))
}

func TestSendDailySummary(t *testing.T) {
	freezeClock(t)

	src := &stubSource{evts: []models.SolarEvent{
		ev("gst", models.CategoryGST, models.SeverityHigh, 1),
		ev("old", models.CategoryFLR, models.SeverityUndefined, 48),
	}}
	bulletins := &stubBulletins{items: []fetchers.Bulletin{
		{Title: "um"}, {Title: "dois"}, {Title: "três"}, {Title: "quatro"},
	}}
	out := &recorder{}
	m := newMonitor(t, Options{Source: src, Sender: out, Bulletins: bulletins, BulletinURL: "http://feed"})

	require.NoError(t, m.SendDailySummary(context.Background()))
	require.Len(t, out.sent, 1)
	got := out.sent[0]
	assert.True(t, strings.HasPrefix(got, "🌞 RESUMO DIÁRIO - 11/05/2024"))
	assert.Contains(t, got, "📰 BOLETINS RECENTES:\n• um\n• dois\n• três\n")
	assert.NotContains(t, got, "quatro")
	assert.Equal(t, fixedNow.Add(-24*time.Hour), bulletins.since.UTC())
}

func TestSendDailySummaryToleratesBulletinFailure(t *testing.T) {
	freezeClock(t)

	out := &recorder{}
	bulletins := &stubBulletins{err: errors.New("feed down")}
	m := newMonitor(t, Options{Source: &stubSource{}, Sender: out, Bulletins: bulletins, BulletinURL: "http://feed"})

	require.NoError(t, m.SendDailySummary(context.Background()))
	require.Len(t, out.sent, 1)
	assert.NotContains(t, out.sent[0], "BOLETINS")
}

func TestSendDailySummaryErrors(t *testing.T) {
	freezeClock(t)

	m := newMonitor(t, Options{Source: allFailing(), Sender: &recorder{}})
	assert.Error(t, m.SendDailySummary(context.Background()))

	m = newMonitor(t, Options{Source: &stubSource{}, Sender: &recorder{failOn: map[int]bool{1: true}}})
	err := m.SendDailySummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send daily summary")
}

func TestSendAstronomyAlert(t *testing.T) {
	freezeClock(t)

	out := &recorder{}
	analyst := &stubAnalyzer{}
	src := &stubSource{evts: []models.SolarEvent{ev("cme", models.CategoryCME, models.SeverityUndefined, 1)}}
	m := newMonitor(t, Options{Source: src, Sender: out, Analyst: analyst})

	require.NoError(t, m.SendAstronomyAlert(context.Background()))
	require.Len(t, out.sent, 1)
	assert.True(t, strings.HasPrefix(out.sent[0], "🔭 ALERTA ASTRONÔMICO AUTOMÁTICO"))
	assert.Contains(t, out.sent[0], "Atividade alto")
	assert.Equal(t, 1, analyst.calls)
}

func TestAnalysisFallsBackToOffline(t *testing.T) {
	freezeClock(t)

	src := &stubSource{evts: []models.SolarEvent{ev("gst", models.CategoryGST, models.SeverityHigh, 1)}}
	m := newMonitor(t, Options{Source: src, Sender: &recorder{}})

	evts, an, err := m.Analysis(context.Background())
	require.NoError(t, err)
	assert.Len(t, evts, 1)
	assert.Equal(t, models.ModeOffline, an.Mode)
	assert.False(t, an.Generated)
	assert.Equal(t, 1, an.EventCount)
	assert.Contains(t, an.Summary, "ANÁLISE AUTOMATIZADA")
}
