package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/logger"
	"solarwatch/internal/metrics"
	"solarwatch/internal/models"

	"github.com/go-resty/resty/v2"
)

const dateLayout = "2006-01-02"

// EventSource is anything that can produce normalized events for a window.
type EventSource interface {
	FetchEvents(ctx context.Context, from, to time.Time) FetchResult
}

// FetchResult carries the events of every category that answered, plus the
// error of every category that did not.
type FetchResult struct {
	Events []models.SolarEvent
	Errors map[models.Category]error
}

// Failed reports whether no category could be fetched at all.
func (r FetchResult) Failed() bool {
	return len(r.Errors) == len(models.Categories)
}

// Err summarizes per-category failures, or nil when every category answered.
func (r FetchResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	parts := make([]string, 0, len(r.Errors))
	for _, cat := range models.Categories {
		if err, ok := r.Errors[cat]; ok {
			parts = append(parts, fmt.Sprintf("%s: %v", cat, err))
		}
	}
	return fmt.Errorf("failed to fetch %d categories: %s", len(parts), strings.Join(parts, "; "))
}

// Options configures a DataFetcher.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// NoRetry turns off resty retries; tests use it to fail fast.
	NoRetry bool
	Metrics *metrics.Metrics
	Logger  *logger.Logger
}

// DataFetcher pulls DONKI category feeds.
type DataFetcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewDataFetcher creates a new data fetcher instance
func NewDataFetcher(opts Options) *DataFetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetTimeout(timeout)
	if !opts.NoRetry {
		client.SetRetryCount(3)
		client.SetRetryWaitTime(2 * time.Second)
	}

	m := opts.Metrics
	if m == nil {
		m = metrics.NewMetricsForTesting()
	}
	log := opts.Logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	return &DataFetcher{
		client:  client,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		metrics: m,
		log:     log.WithComponent("fetcher"),
	}
}

type categoryResult struct {
	category models.Category
	events   []models.SolarEvent
	err      error
}

// FetchEvents fetches every category concurrently. A failing category is
// logged and reported in the result; the others are still returned.
func (f *DataFetcher) FetchEvents(ctx context.Context, from, to time.Time) FetchResult {
	f.log.Info("Starting DONKI fetch", map[string]interface{}{
		"from": from.Format(dateLayout),
		"to":   to.Format(dateLayout),
	})

	results := make(chan categoryResult, len(models.Categories))
	for _, cat := range models.Categories {
		go func(cat models.Category) {
			evts, err := f.fetchCategory(ctx, cat, from, to)
			results <- categoryResult{category: cat, events: evts, err: err}
		}(cat)
	}

	byCategory := make(map[models.Category][]models.SolarEvent, len(models.Categories))
	res := FetchResult{Errors: map[models.Category]error{}}

	for completed := 0; completed < len(models.Categories); completed++ {
		select {
		case r := <-results:
			f.metrics.FetchRequests.WithLabelValues(string(r.category), metrics.Outcome(r.err)).Inc()
			if r.err != nil {
				f.log.Error("DONKI fetch failed", r.err, map[string]interface{}{"category": string(r.category)})
				res.Errors[r.category] = r.err
				continue
			}
			f.metrics.EventsFetched.WithLabelValues(string(r.category)).Add(float64(len(r.events)))
			byCategory[r.category] = r.events
		case <-ctx.Done():
			for _, cat := range models.Categories {
				if _, done := byCategory[cat]; !done {
					if _, failed := res.Errors[cat]; !failed {
						res.Errors[cat] = ctx.Err()
					}
				}
			}
			completed = len(models.Categories)
		}
	}

	res.Events = []models.SolarEvent{}
	for _, cat := range models.Categories {
		res.Events = append(res.Events, byCategory[cat]...)
	}

	f.log.Info("DONKI fetch completed", map[string]interface{}{
		"events": len(res.Events),
		"errors": len(res.Errors),
	})
	return res
}

// fetchCategory fetches and normalizes one DONKI category.
func (f *DataFetcher) fetchCategory(ctx context.Context, cat models.Category, from, to time.Time) ([]models.SolarEvent, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"startDate": from.Format(dateLayout),
			"endDate":   to.Format(dateLayout),
			"api_key":   f.apiKey,
		}).
		Get(f.baseURL + "/" + string(cat))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", cat, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("DONKI %s returned status %d", cat, resp.StatusCode())
	}

	raws, err := models.ParseRawEventArray(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", cat, err)
	}

	return events.NormalizeAll(raws, cat), nil
}

// Window returns the [now-lookback, now] query window on the events clock.
func Window(lookback time.Duration) (time.Time, time.Time) {
	now := events.Now().UTC()
	return now.Add(-lookback), now
}
