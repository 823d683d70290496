package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "solarwatch"

// Metrics holds the Prometheus collectors for fetches, deliveries, analyses and jobs.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // labels: category, outcome={success,error}
	EventsFetched *prometheus.CounterVec // labels: category
	MessagesSent  *prometheus.CounterVec // labels: outcome={success,error}
	AnalysisRuns  *prometheus.CounterVec // labels: mode
	JobDuration   *prometheus.HistogramVec
	LastCheck     prometheus.Gauge
}

var jobBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      "DONKI requests by event category and outcome.",
		}, []string{"category", "outcome"}),
		EventsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_fetched_total",
			Help:      "Normalized events received per category.",
		}, []string{"category"}),
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Outbound messages by outcome.",
		}, []string{"outcome"}),
		AnalysisRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_runs_total",
			Help:      "Event analyses by mode (groq, openai, offline, offline_fallback).",
		}, []string{"mode"}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled jobs.",
			Buckets:   jobBuckets,
		}, []string{"job"}),
		LastCheck: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_check_timestamp_seconds",
			Help:      "Unix time of the last completed event check.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.EventsFetched,
		m.MessagesSent,
		m.AnalysisRuns,
		m.JobDuration,
		m.LastCheck,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// repeated construction from tests never panics.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "fetch_requests_total"}, []string{"category", "outcome"}),
		EventsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "events_fetched_total"}, []string{"category"}),
		MessagesSent:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "messages_sent_total"}, []string{"outcome"}),
		AnalysisRuns:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "analysis_runs_total"}, []string{"mode"}),
		JobDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "job_duration_seconds", Buckets: jobBuckets}, []string{"job"}),
		LastCheck:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "last_check_timestamp_seconds"}),
	}
}

// Outcome maps an error to the "outcome" label value.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
