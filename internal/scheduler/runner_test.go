package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"solarwatch/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Config{Level: logger.DEBUG, Format: logger.JSONFormat, Output: buf})
}

func TestAddValidatesSpec(t *testing.T) {
	r := New(testLogger(&bytes.Buffer{}), context.Background())

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"hourly", "0 * * * *", false},
		{"weekly monday", "0 9 * * 1", false},
		{"descriptor", "@daily", false},
		{"six fields rejected", "0 0 * * * *", true},
		{"garbage", "soon", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Add(tt.name, tt.spec, func(context.Context) {})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.name)
				return
			}
			require.NoError(t, err)
		})
	}
	assert.Equal(t, 3, r.Entries())
}

func TestStartStop(t *testing.T) {
	var buf bytes.Buffer
	r := New(testLogger(&buf), nil)
	_, err := r.Add("noop", "@every 1h", func(context.Context) {})
	require.NoError(t, err)

	r.Start()
	r.Stop()
	assert.Contains(t, buf.String(), "Scheduler started")
	assert.Contains(t, buf.String(), "Scheduler stopped")
}

func TestCronLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	cl := cronLogger{log: testLogger(&buf)}

	cl.Info("schedule", "entry", 1, "odd")
	cl.Error(errors.New("boom"), "panic", "job", "check")

	out := buf.String()
	assert.Contains(t, out, "cron: schedule")
	assert.Contains(t, out, "cron: panic")
	assert.Contains(t, out, "boom")
	assert.Equal(t, map[string]interface{}{"a": 1}, kvFields([]interface{}{"a", 1, "dangling"}))
}
