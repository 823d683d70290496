package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"solarwatch/internal/metrics"
	"solarwatch/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var donkiBodies = map[string]string{
	"/GST": `[{"gstID":"2024-05-10T15:00:00-GST-001","startTime":"2024-05-10T15:00Z","allKpIndex":[{"kpIndex":8.67}],"link":"https://example/gst"}]`,
	"/CME": `[{"activityID":"2024-05-09T09:24:00-CME-001","startTime":"2024-05-09T09:24Z","note":"Halo CME 1200 km/s toward Earth"}]`,
	"/FLR": `[{"flrID":"2024-05-09T08:45:00-FLR-001","beginTime":"2024-05-09T08:45Z","classType":"X1.1"}]`,
	"/SEP": `null`,
	"/HSS": ``,
}

func newTestFetcher(t *testing.T, handler http.HandlerFunc) (*DataFetcher, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := metrics.NewMetricsForTesting()
	return NewDataFetcher(Options{
		BaseURL: srv.URL + "/",
		APIKey:  "TEST_KEY",
		Timeout: 5 * time.Second,
		NoRetry: true,
		Metrics: m,
	}), m
}

func TestFetchEventsAllCategories(t *testing.T) {
	var mu sync.Mutex
	queries := map[string]string{}

	f, m := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries[r.URL.Path] = r.URL.RawQuery
		mu.Unlock()
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(donkiBodies[r.URL.Path]))
	})

	from := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	res := f.FetchEvents(context.Background(), from, to)

	require.Empty(t, res.Errors)
	assert.NoError(t, res.Err())
	assert.False(t, res.Failed())
	require.Len(t, res.Events, 3)

	// category order GST, CME, FLR regardless of completion order
	assert.Equal(t, models.CategoryGST, res.Events[0].Category)
	assert.Equal(t, models.CategoryCME, res.Events[1].Category)
	assert.Equal(t, models.CategoryFLR, res.Events[2].Category)
	assert.Equal(t, models.SeverityHigh, res.Events[0].Severity)
	assert.Equal(t, "2024-05-09T08:45:00-FLR-001", res.Events[2].ID)

	for _, cat := range models.Categories {
		q := queries["/"+string(cat)]
		assert.Contains(t, q, "startDate=2024-05-05")
		assert.Contains(t, q, "endDate=2024-05-12")
		assert.Contains(t, q, "api_key=TEST_KEY")
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchRequests.WithLabelValues("SEP", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsFetched.WithLabelValues("GST")))
}

func TestFetchEventsIsolatesFailures(t *testing.T) {
	f, m := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/CME":
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		case "/FLR":
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		default:
			_, _ = w.Write([]byte(donkiBodies[r.URL.Path]))
		}
	})

	res := f.FetchEvents(context.Background(), time.Now().Add(-24*time.Hour), time.Now())

	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[models.CategoryCME].Error(), "status 429")
	assert.Contains(t, res.Errors[models.CategoryFLR].Error(), "failed to parse FLR response")
	assert.False(t, res.Failed())

	require.Len(t, res.Events, 1)
	assert.Equal(t, models.CategoryGST, res.Events[0].Category)

	err := res.Err()
	require.Error(t, err)
	assert.True(t, strings.Index(err.Error(), "CME") < strings.Index(err.Error(), "FLR"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchRequests.WithLabelValues("CME", "error")))
}

func TestFetchEventsAllFail(t *testing.T) {
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := f.FetchEvents(context.Background(), time.Now().Add(-time.Hour), time.Now())
	assert.True(t, res.Failed())
	assert.NotNil(t, res.Events)
	assert.Empty(t, res.Events)
}

func TestFetchEventsCancelledContext(t *testing.T) {
	f, _ := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.FetchEvents(ctx, time.Now().Add(-time.Hour), time.Now())
	assert.True(t, res.Failed())
}

func TestWindow(t *testing.T) {
	from, to := Window(48 * time.Hour)
	assert.Equal(t, 48*time.Hour, to.Sub(from))
	assert.Equal(t, time.UTC, to.Location())
}
